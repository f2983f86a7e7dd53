package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legal_wizard_go/config"
	"legal_wizard_go/models"
	"legal_wizard_go/services/wizard"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *wizard.Store {
	return wizard.NewStore(func(string) *wizard.Controller {
		return wizard.New(wizard.Config{})
	})
}

func runSession(t *testing.T, store *wizard.Store, cfg *config.Config, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("locale", "en")

	handler := WizardSession(store, cfg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return c, rec
}

func TestWizardSession(t *testing.T) {
	cfg := &config.Config{Environment: "production", SessionTTL: time.Hour}

	t.Run("NewSession", func(t *testing.T) {
		store := newTestStore()
		c, rec := runSession(t, store, cfg, httptest.NewRequest(http.MethodGet, "/", nil))

		id := GetSessionID(c)
		assert.NotEmpty(t, id)
		assert.NotNil(t, GetWizard(c))
		assert.Equal(t, 1, store.Len())

		cookie := findCookie(rec, SessionCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, id, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
	})

	t.Run("ExistingSession", func(t *testing.T) {
		store := newTestStore()
		id, ctrl := store.Create()
		require.NoError(t, ctrl.SelectDocuments([]models.DocumentType{models.DocumentTypeFeeAgreement}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: id})
		c, rec := runSession(t, store, cfg, req)

		assert.Equal(t, id, GetSessionID(c))
		assert.Same(t, ctrl, GetWizard(c))
		assert.Equal(t, models.StepFileUpload, GetWizard(c).Step())

		cookie := findCookie(rec, SessionCookieName)
		require.NotNil(t, cookie, "cookie expiry follows the sliding session")
		assert.Equal(t, id, cookie.Value)
	})

	t.Run("ExpiryRefreshedOnEachRequest", func(t *testing.T) {
		store := newTestStore()
		_, rec := runSession(t, store, cfg, httptest.NewRequest(http.MethodGet, "/", nil))
		first := findCookie(rec, SessionCookieName)
		require.NotNil(t, first)

		time.Sleep(1100 * time.Millisecond)

		req := httptest.NewRequest(http.MethodPost, "/wizard/back", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: first.Value})
		_, rec = runSession(t, store, cfg, req)
		second := findCookie(rec, SessionCookieName)
		require.NotNil(t, second)

		assert.Equal(t, first.Value, second.Value)
		assert.True(t, second.Expires.After(first.Expires), "expiry moves forward")
		assert.WithinDuration(t, time.Now().Add(cfg.SessionTTL), second.Expires, 2*time.Second)
	})

	t.Run("UnknownSessionStartsFresh", func(t *testing.T) {
		store := newTestStore()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "expired"})
		c, rec := runSession(t, store, cfg, req)

		assert.NotEqual(t, "expired", GetSessionID(c))
		assert.NotNil(t, findCookie(rec, SessionCookieName))
	})
}

func TestGetWizardMissing(t *testing.T) {
	c := echo.New().NewContext(nil, nil)
	assert.Nil(t, GetWizard(c))
	assert.Empty(t, GetSessionID(c))
}
