package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legal_wizard_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})

	assert.NotNil(t, rl)
	assert.Equal(t, 10, rl.config.Requests)
	assert.Equal(t, time.Minute, rl.config.Window)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.Equal(t, "wizard.errors.rate_limited", rl.config.MessageKey)
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Minute})
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"), "keys are limited independently")

	now = now.Add(2 * time.Minute)
	assert.True(t, rl.Allow("a"), "window expired")

	rl.sweep()
	rl.mu.Lock()
	_, hasB := rl.store["b"]
	rl.mu.Unlock()
	assert.False(t, hasB)
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()

	newHandler := func(requests int) echo.HandlerFunc {
		rl := NewRateLimiter(RateLimitConfig{Requests: requests, Window: time.Minute})
		return rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})
	}

	t.Run("WithinLimit", func(t *testing.T) {
		handler := newHandler(2)
		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		handler := newHandler(1)
		assert.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())))

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(i18n.WithLocale(req.Context(), "en"))
		err := handler(e.NewContext(req, httptest.NewRecorder()))

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
		assert.Equal(t, "Too many requests. Please try again later.", he.Message)
	})

	t.Run("HXRequestExceeded", func(t *testing.T) {
		handler := newHandler(1)
		assert.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())))

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), i18n.Translate("ar", "wizard.errors.rate_limited"))
	})
}
