package middleware

import (
	"net/http"

	"stockroom/config"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionContextKey is the echo context key the middleware stores the
// authenticated session under.
const SessionContextKey = "session"

// AuthMiddleware gates routes on the presence of a server-side session. The
// response to a denied request depends on the mount point: API routes get a
// 401 error body, browser navigation routes get a redirect to the landing
// page.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
	cfg  *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, cfg: cfg}
}

// RequireSession permits the request only with an authenticated session;
// otherwise it responds 401 with a structured error body.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.sessionFromRequest(c)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return domainerrors.ErrUnauthorized
			}

			return errors.WithStack(err)
		}

		c.Set(SessionContextKey, session)

		return next(c)
	}
}

// RequireSessionOrRedirect permits the request only with an authenticated
// session; otherwise it redirects to the landing page.
func (m *AuthMiddleware) RequireSessionOrRedirect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.sessionFromRequest(c)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return c.Redirect(http.StatusFound, "/")
			}

			return errors.WithStack(err)
		}

		c.Set(SessionContextKey, session)

		return next(c)
	}
}

// SessionFromContext returns the session a Require* middleware stored, or nil.
func SessionFromContext(c echo.Context) *entity.Session {
	session, _ := c.Get(SessionContextKey).(*entity.Session)

	return session
}

func (m *AuthMiddleware) sessionFromRequest(c echo.Context) (*entity.Session, error) {
	cookie, err := c.Cookie(m.cfg.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, repository.ErrSessionNotFound
	}

	return m.auth.CurrentSession(c.Request().Context(), cookie.Value)
}
