package services

import (
	"context"
	"os"
	"testing"
	"time"

	"legal_wizard_go/models"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPDFOptions(t *testing.T) {
	opts := DefaultPDFOptions()
	assert.Equal(t, "portrait", opts.PageOrientation)
	assert.Equal(t, "A4", opts.PageSize)
	assert.Equal(t, 57, opts.MarginTop)
	assert.Equal(t, 57, opts.MarginRight)

	w, h := opts.paperSize()
	assert.Equal(t, 8.27, w)
	assert.Equal(t, 11.69, h)

	opts.PageOrientation = "landscape"
	opts.PageSize = "letter"
	w, h = opts.paperSize()
	assert.Equal(t, 11.0, w)
	assert.Equal(t, 8.5, h)
}

func TestWrapHTMLForPDF(t *testing.T) {
	content := `<div dir="rtl"><h1>وكالة عامة</h1><p>نص</p></div>`
	html := WrapHTMLForPDF("وكالة <عامة>", content)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `<html lang="ar" dir="rtl">`)
	assert.Contains(t, html, "direction: rtl;")
	assert.Contains(t, html, "<title>وكالة &lt;عامة&gt;</title>")
	assert.Contains(t, html, content)
}

func TestPDFFileName(t *testing.T) {
	assert.Equal(t, "01_fee_agreement.pdf", PDFFileName(0, models.DocumentTypeFeeAgreement))
	assert.Equal(t, "12_incidental_request.pdf", PDFFileName(11, models.DocumentTypeIncidentalRequest))
}

func TestGeneratePDFSmoke(t *testing.T) {
	// Needs a real browser
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		t.Skip("Skipping PDF generation test: CHROME_PATH not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	r := NewPDFRenderer(chromePath, DefaultPDFOptions())
	pdf, err := r.RenderDocument(ctx, models.GeneratedDocument{
		DocType:     models.DocumentTypeGeneralPowerOfAttorney,
		HTMLContent: "<h1>وكالة عامة</h1>",
	})
	if err != nil {
		if os.IsNotExist(err) {
			t.Skipf("Skipping: Chrome not found at %s", chromePath)
		}
		t.Errorf("GeneratePDF failed: %v", err)
		return
	}

	assert.True(t, len(pdf) > 0)
	assert.Contains(t, string(pdf[:5]), "%PDF-")
}
