package usecase

import (
	"context"

	"stockroom/internal/domain/entity"
)

// AuthUsecase drives the OAuth login flow and session lifecycle.
type AuthUsecase interface {
	// BeginLogin starts the handshake and returns the provider authorization
	// URL to redirect the client to.
	BeginLogin(ctx context.Context) string

	// CompleteLogin finishes the handshake after the provider callback. The
	// returned session is persisted (write acknowledged) before this returns,
	// so the caller may immediately acknowledge the login to the client.
	CompleteLogin(ctx context.Context, code, state string) (*entity.Session, error)

	// CurrentSession resolves the session for a client-held token.
	CurrentSession(ctx context.Context, token string) (*entity.Session, error)

	// Logout destroys the session. A token with no stored session is not an
	// error; a failing destroy is.
	Logout(ctx context.Context, token string) error
}
