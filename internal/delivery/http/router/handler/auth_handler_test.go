package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockroom/config"
	"stockroom/internal/domain/entity"
	mockRepo "stockroom/internal/mocks/repository"
	mockService "stockroom/internal/mocks/service"
	"stockroom/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	echo        *echo.Echo
	handler     *AuthHandler
	oauth       *mockService.MockOAuthService
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		CookieName: "sid",
		TTL:        time.Hour,
	}

	oauth := mockService.NewMockOAuthService(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := impl.NewAuthService(oauth, sessionRepo, cfg, logger)

	return authHandlerFixtures{
		echo:        echo.New(),
		handler:     NewAuthHandler(auth, cfg, logger),
		oauth:       oauth,
		sessionRepo: sessionRepo,
	}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "sid" {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Home_LoggedOut(t *testing.T) {
	fx := createTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Home(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/login"`)
}

func TestAuthHandler_Home_LoggedIn(t *testing.T) {
	fx := createTestAuthHandler(t)

	stored := entity.NewSession("token-abc", entity.IdentityProfile{
		Username: "octocat",
		Name:     "The Octocat",
	}, time.Hour)

	fx.sessionRepo.EXPECT().
		FindByToken(mock.Anything, "token-abc").
		Return(stored, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "token-abc"})
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Home(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Octocat")
	assert.Contains(t, rec.Body.String(), `href="/logout"`)
}

func TestAuthHandler_GitHubLogin_RedirectsToProvider(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.oauth.EXPECT().
		AuthorizationURL().
		Return("https://github.com/login/oauth/authorize?client_id=abc&state=xyz")

	req := httptest.NewRequest(http.MethodGet, "/auth/github", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.GitHubLogin(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "github.com/login/oauth/authorize")
}

func TestAuthHandler_GitHubCallback_Success(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.oauth.EXPECT().
		ValidateState("state-123").
		Return(true)

	fx.oauth.EXPECT().
		ExchangeCode(mock.Anything, "code-456").
		Return("gho_token", nil)

	fx.oauth.EXPECT().
		FetchProfile(mock.Anything, "gho_token").
		Return(&entity.IdentityProfile{ProviderID: "583231", Username: "octocat"}, nil)

	fx.sessionRepo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/github/callback?code=code-456&state=state-123", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.GitHubCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandler_GitHubCallback_ProviderDenied(t *testing.T) {
	fx := createTestAuthHandler(t)

	// The user declined the grant; GitHub calls back with error instead of
	// code. No exchange is attempted, no session is created.
	req := httptest.NewRequest(http.MethodGet, "/auth/github/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.GitHubCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Nil(t, sessionCookie(t, rec))
}

func TestAuthHandler_GitHubCallback_StateMismatch(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.oauth.EXPECT().
		ValidateState("forged").
		Return(false)

	req := httptest.NewRequest(http.MethodGet, "/auth/github/callback?code=code-456&state=forged", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.GitHubCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Nil(t, sessionCookie(t, rec))
}

func TestAuthHandler_Logout(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.sessionRepo.EXPECT().
		Delete(mock.Anything, "token-abc").
		Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "token-abc"})
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Logout(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
}
