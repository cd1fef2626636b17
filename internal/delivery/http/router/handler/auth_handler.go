package handler

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"time"

	"stockroom/config"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the landing page and the GitHub OAuth login flow.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg, logger: logger}
}

// Home renders a minimal landing page reflecting the login state.
func (h *AuthHandler) Home(c echo.Context) error {
	if token, ok := h.sessionToken(c); ok {
		session, err := h.uc.CurrentSession(c.Request().Context(), token)
		if err == nil {
			body := fmt.Sprintf(
				`<h1>Hello, %s</h1><a href="/logout">Logout</a>`,
				html.EscapeString(session.Profile.DisplayName()),
			)

			return c.HTML(http.StatusOK, body)
		}
	}

	return c.HTML(http.StatusOK, `<h1>Welcome</h1><a href="/login">Login with GitHub</a>`)
}

// Login forwards to the provider entry point.
func (h *AuthHandler) Login(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/auth/github")
}

// GitHubLogin starts the OAuth handshake by sending the client to GitHub's
// authorization page.
func (h *AuthHandler) GitHubLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.uc.BeginLogin(c.Request().Context()))
}

// GitHubCallback finishes the OAuth handshake. Any provider-side failure,
// including the user denying the grant, lands back on the home page without a
// session. The session cookie is only set after the session write has been
// acknowledged.
func (h *AuthHandler) GitHubCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if errParam := c.QueryParam("error"); errParam != "" || code == "" {
		h.logger.Warn("oauth callback rejected by provider", slog.String("error", c.QueryParam("error")))

		return c.Redirect(http.StatusFound, "/")
	}

	session, err := h.uc.CompleteLogin(c.Request().Context(), code, c.QueryParam("state"))
	if err != nil {
		h.logger.Warn("oauth login failed", slog.Any("error", err))

		return c.Redirect(http.StatusFound, "/")
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}

// Logout destroys the server-side session and expires the cookie. A missing
// session is treated as already logged out.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token, ok := h.sessionToken(c); ok {
		if err := h.uc.Logout(c.Request().Context(), token); err != nil {
			return errors.WithStack(err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) sessionToken(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(h.cfg.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}
