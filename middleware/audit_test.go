package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"legal_wizard_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestEventMeta(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set(echo.HeaderXRealIP, "10.1.2.3")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := EventMeta()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))

	meta := GetEventMeta(c)
	assert.Equal(t, "test-agent", meta.UserAgent)
	assert.Equal(t, "10.1.2.3", meta.IPAddress)
}

func TestGetEventMeta(t *testing.T) {
	e := echo.New()

	t.Run("Exists", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		expected := services.EventMeta{IPAddress: "127.0.0.1"}
		c.Set(ContextKeyEventMeta, expected)
		assert.Equal(t, expected, GetEventMeta(c))
	})

	t.Run("NotExists", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		assert.Equal(t, services.EventMeta{}, GetEventMeta(c))
	})
}
