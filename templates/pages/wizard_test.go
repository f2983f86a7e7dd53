package pages

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"

	"legal_wizard_go/middleware"
	"legal_wizard_go/models"
	"legal_wizard_go/services/i18n"
	"legal_wizard_go/services/wizard"
	"legal_wizard_go/templates/partials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(); err != nil {
		log.Fatalf("failed to load translations: %v", err)
	}
	os.Exit(m.Run())
}

func renderPage(t *testing.T, ctx context.Context, v partials.WizardView) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WizardPage(v).Render(ctx, &buf))
	return buf.String()
}

func TestWizardPageDirection(t *testing.T) {
	view := partials.WizardView{State: wizard.State{Step: models.StepDocumentSelect}}

	html := renderPage(t, i18n.WithLocale(context.Background(), "ar"), view)
	assert.Contains(t, html, `<html lang="ar" dir="rtl">`)
	assert.Contains(t, html, "<title>"+i18n.Translate("ar", "app.title")+"</title>")

	html = renderPage(t, i18n.WithLocale(context.Background(), "en"), view)
	assert.Contains(t, html, `<html lang="en" dir="ltr">`)
	assert.Contains(t, html, `<div id="wizard"`)
}

func TestWizardPageScriptAndHeaders(t *testing.T) {
	ctx := context.WithValue(i18n.WithLocale(context.Background(), "en"), middleware.NonceKey, "n0nce")
	html := renderPage(t, ctx, partials.WizardView{
		State:     wizard.State{Step: models.StepDocumentSelect},
		CSRFToken: "tok",
	})

	assert.Contains(t, html, `<script src="https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js" nonce="n0nce"></script>`)
	assert.Contains(t, html, `<body hx-headers="{&#34;X-CSRF-Token&#34;:&#34;tok&#34;}">`)
	assert.Contains(t, html, `<meta name="htmx-config" content="{&#34;responseHandling&#34;:`)
}
