package impl

import (
	"context"
	"log/slog"

	"stockroom/config"
	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type authService struct {
	oauth    service.OAuthService
	sessions repository.SessionRepository
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthService creates the authentication service instance
func NewAuthService(
	oauth service.OAuthService,
	sessions repository.SessionRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		oauth:    oauth,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// BeginLogin starts the handshake and returns the provider authorization URL.
func (s *authService) BeginLogin(ctx context.Context) string {
	return s.oauth.AuthorizationURL()
}

// CompleteLogin finishes the handshake after the provider callback.
//
// The session write is awaited and checked before returning: redirecting the
// client first would let it appear logged in while the session is not yet
// retrievable on the next request.
func (s *authService) CompleteLogin(ctx context.Context, code, state string) (*entity.Session, error) {
	if !s.oauth.ValidateState(state) {
		return nil, domainerrors.ErrOAuthStateMismatch
	}

	accessToken, err := s.oauth.ExchangeCode(ctx, code)
	if err != nil {
		s.log(ctx).Warn("OAuth code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthExchangeFailed
	}

	profile, err := s.oauth.FetchProfile(ctx, accessToken)
	if err != nil {
		s.log(ctx).Warn("OAuth profile fetch failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthExchangeFailed
	}

	session := entity.NewSession(uuid.NewString(), *profile, s.cfg.Session.TTL)

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	s.log(ctx).Info("User logged in",
		slog.String("username", profile.Username),
		slog.String("displayName", profile.DisplayName()))

	return session, nil
}

// CurrentSession resolves the session for a client-held token.
func (s *authService) CurrentSession(ctx context.Context, token string) (*entity.Session, error) {
	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return session, nil
}

// Logout destroys the session stored under the token.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		// Logging out an already-absent session is a no-op, matching the
		// unauthenticated default state.
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		s.log(ctx).Error("Session destroy failed", slog.Any("error", err))

		return domainerrors.ErrSessionDestroyFailed
	}

	return nil
}
