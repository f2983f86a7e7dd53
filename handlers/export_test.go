package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"legal_wizard_go/models"
	"legal_wizard_go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportsRequirePreview(t *testing.T) {
	app := newTestApp(t, appOptions{})
	app.get("/")

	assert.Equal(t, http.StatusConflict, app.get("/wizard/documents/0/pdf").Code)
	assert.Equal(t, http.StatusConflict, app.get("/wizard/export.xlsx").Code)
	assert.Equal(t, http.StatusConflict, app.postForm("/wizard/email", url.Values{"email": {"a@example.com"}}, true).Code)
}

func TestDocumentPDF(t *testing.T) {
	app := newTestApp(t, appOptions{})
	app.toPreview(models.DocumentTypeFeeAgreement, models.DocumentTypeJudicialPowerOfAttorney)

	rec := app.get("/wizard/documents/1/pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "02_judicial_power_of_attorney.pdf")
	assert.Equal(t, "%PDF-1.4 judicial_power_of_attorney", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, app.get("/wizard/documents/2/pdf").Code)
	assert.Equal(t, http.StatusNotFound, app.get("/wizard/documents/x/pdf").Code)
}

func TestDocumentPDFFailure(t *testing.T) {
	app := newTestApp(t, appOptions{pdf: fakePDF{err: errors.New("chrome crashed")}})
	app.toPreview(models.DocumentTypeFeeAgreement)

	rec := app.get("/wizard/documents/0/pdf")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, models.StepPreview, app.controller().Step(), "export failures do not change the wizard")
}

func TestExportXLSX(t *testing.T) {
	app := newTestApp(t, appOptions{})
	app.toPreview(models.DocumentTypeFeeAgreement)

	rec := app.get("/wizard/export.xlsx?lang=en")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.XLSXContentType, rec.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue("Data", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ali", value)
}

func TestEmailDocuments(t *testing.T) {
	app := newTestApp(t, appOptions{})
	app.toPreview(models.DocumentTypeFeeAgreement)
	app.get("/?lang=en")

	t.Run("Invalid address", func(t *testing.T) {
		rec := app.postForm("/wizard/email", url.Values{"email": {"nope"}}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "The submitted data is not valid.")
	})

	t.Run("Sent in test mode", func(t *testing.T) {
		rec := app.postForm("/wizard/email", url.Values{"email": {"client@example.com"}}, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Documents sent to client@example.com")
		assert.Contains(t, rec.Body.String(), `data-step="PREVIEW"`)
	})
}
