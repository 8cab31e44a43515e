package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodlog/config"
	deliverycontext "foodlog/internal/delivery/context"
	domainerrors "foodlog/internal/domain/errors"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(newBufferLogger(&buf)).Process(func(c echo.Context) error {
		assert.Equal(t, "req-123", deliverycontext.GetRequestID(c))
		assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(c.Request().Context()))

		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), "request_id=req-123")
}

func TestRequestIDMiddleware_ReplacesUnacceptableHeader(t *testing.T) {
	tests := map[string]string{
		"missing":     "",
		"too long":    strings.Repeat("a", maxRequestIDLength+1),
		"with spaces": "bad id",
		"control":     "bad\x01id",
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, header, got)
			assert.Len(t, got, 36)
		})
	}
}

func TestLoggerMiddleware_UsesErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/users/login", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(newBufferLogger(&buf), cfg).Handle(func(echo.Context) error {
		return domainerrors.ErrInvalidCredentials
	})

	assert.ErrorIs(t, handler(c), domainerrors.ErrInvalidCredentials)
	assert.Contains(t, buf.String(), "status=401")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(newBufferLogger(&buf), &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Empty(t, buf.String())
}
