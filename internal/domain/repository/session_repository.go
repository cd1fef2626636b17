package repository

import (
	"context"

	"stockroom/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when no session exists for a token.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository is the server-side session store contract. Single writer
// per token is assumed; there is no compare-and-swap on session state.
type SessionRepository interface {
	// FindByToken retrieves the session for the given token, or
	// ErrSessionNotFound when absent or expired.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// Save persists the session with an acknowledged write. Callers may only
	// treat the login as complete after Save returns nil.
	Save(ctx context.Context, session *entity.Session) error

	// Delete destroys the session. Returns ErrSessionNotFound when no session
	// was stored under the token.
	Delete(ctx context.Context, token string) error
}
