package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"legal_wizard_go/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCSRFToken(t *testing.T) {
	e := echo.New()

	t.Run("TokenExists", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", "test-csrf-token")
		assert.Equal(t, "test-csrf-token", GetCSRFToken(c))
	})

	t.Run("TokenMissing", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		assert.Equal(t, "", GetCSRFToken(c))
	})

	t.Run("TokenInvalidType", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", 123)
		assert.Equal(t, "", GetCSRFToken(c))
	})
}

func TestCSRF(t *testing.T) {
	e := echo.New()
	e.Use(CSRF(&config.Config{Environment: "development"}))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetCSRFToken(c))
	})
	e.POST("/wizard/reset", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Body.String()
	require.NotEmpty(t, token)

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "_csrf" {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, token, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	post := func(header, form string) int {
		req := httptest.NewRequest(http.MethodPost, "/wizard/reset", strings.NewReader(form))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.AddCookie(cookie)
		if header != "" {
			req.Header.Set(CSRFHeader, header)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, post(token, ""), "header token")
	assert.Equal(t, http.StatusNoContent, post("", "_csrf="+token), "form token")
	assert.Equal(t, http.StatusForbidden, post("forged", ""))
}
