package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))

	// Without a stored logger the fallback wins.
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}

func TestGetRequestID_RoundTrip(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", GetRequestID(c))
}

func TestGetRequestID_GeneratesWhenAbsent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))
}
