package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"stockroom/config"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	mockRepo "stockroom/internal/mocks/repository"
	mockService "stockroom/internal/mocks/service"
	"stockroom/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	oauth       *mockService.MockOAuthService
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	oauth := mockService.NewMockOAuthService(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		CookieName: "sid",
		TTL:        time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAuthService(oauth, sessionRepo, cfg, logger)

	return authServiceFixtures{
		service:     service,
		oauth:       oauth,
		sessionRepo: sessionRepo,
	}
}

func testProfile() *entity.IdentityProfile {
	return &entity.IdentityProfile{
		ProviderID: "583231",
		Username:   "octocat",
		Name:       "The Octocat",
		AvatarURL:  "https://avatars.githubusercontent.com/u/583231",
	}
}

func TestAuthService_BeginLogin(t *testing.T) {
	fx := createTestAuthService(t)

	fx.oauth.EXPECT().
		AuthorizationURL().
		Return("https://github.com/login/oauth/authorize?client_id=abc&state=xyz")

	url := fx.service.BeginLogin(context.Background())
	assert.Contains(t, url, "github.com/login/oauth/authorize")
}

func TestAuthService_CompleteLogin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.oauth.EXPECT().
		ValidateState("state-123").
		Return(true)

	fx.oauth.EXPECT().
		ExchangeCode(ctx, "code-456").
		Return("gho_token", nil)

	fx.oauth.EXPECT().
		FetchProfile(ctx, "gho_token").
		Return(testProfile(), nil)

	// The session must be written before CompleteLogin returns.
	fx.sessionRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	session, err := fx.service.CompleteLogin(ctx, "code-456", "state-123")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "octocat", session.Profile.Username)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestAuthService_CompleteLogin_StateMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	fx.oauth.EXPECT().
		ValidateState("forged").
		Return(false)

	session, err := fx.service.CompleteLogin(context.Background(), "code-456", "forged")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateMismatch)
}

func TestAuthService_CompleteLogin_ExchangeFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.oauth.EXPECT().
		ValidateState("state-123").
		Return(true)

	fx.oauth.EXPECT().
		ExchangeCode(ctx, "bad-code").
		Return("", errors.New("bad_verification_code"))

	session, err := fx.service.CompleteLogin(ctx, "bad-code", "state-123")
	assert.Nil(t, session)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OAUTH_EXCHANGE_FAILED", appErr.ErrorCode())
	assert.NotContains(t, appErr.Details(), "bad_verification_code")
}

func TestAuthService_CompleteLogin_SaveFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.oauth.EXPECT().
		ValidateState("state-123").
		Return(true)

	fx.oauth.EXPECT().
		ExchangeCode(ctx, "code-456").
		Return("gho_token", nil)

	fx.oauth.EXPECT().
		FetchProfile(ctx, "gho_token").
		Return(testProfile(), nil)

	fx.sessionRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Session")).
		Return(errors.New("write concern timeout"))

	// An unacknowledged write means no login.
	session, err := fx.service.CompleteLogin(ctx, "code-456", "state-123")
	assert.Nil(t, session)
	require.Error(t, err)
}

func TestAuthService_CurrentSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	stored := entity.NewSession("token-abc", *testProfile(), time.Hour)

	fx.sessionRepo.EXPECT().
		FindByToken(ctx, "token-abc").
		Return(stored, nil)

	session, err := fx.service.CurrentSession(ctx, "token-abc")
	require.NoError(t, err)
	assert.Equal(t, stored, session)
}

func TestAuthService_CurrentSession_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		FindByToken(ctx, "stale-token").
		Return(nil, repository.ErrSessionNotFound)

	session, err := fx.service.CurrentSession(ctx, "stale-token")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		Delete(ctx, "token-abc").
		Return(nil)

	err := fx.service.Logout(ctx, "token-abc")
	require.NoError(t, err)
}

func TestAuthService_Logout_AbsentSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		Delete(ctx, "stale-token").
		Return(repository.ErrSessionNotFound)

	// Logging out without a stored session is already the logged-out state.
	err := fx.service.Logout(ctx, "stale-token")
	require.NoError(t, err)
}

func TestAuthService_Logout_DestroyFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		Delete(ctx, "token-abc").
		Return(errors.New("connection reset"))

	err := fx.service.Logout(ctx, "token-abc")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SESSION_DESTROY_FAILED", appErr.ErrorCode())
	assert.NotContains(t, appErr.Details(), "connection reset")
}
