package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"legal_wizard_go/middleware"
	"legal_wizard_go/models"
	"legal_wizard_go/services"
	"legal_wizard_go/services/i18n"
	"legal_wizard_go/services/wizard"

	"github.com/labstack/echo/v4"
)

// previewState returns the snapshot when the session is on PREVIEW
func previewState(c echo.Context) (wizard.State, error) {
	state := middleware.GetWizard(c).Snapshot()
	if state.Step != models.StepPreview || state.Loading {
		return state, echo.NewHTTPError(http.StatusConflict, i18n.T(c.Request().Context(), "wizard.errors.invalid_transition"))
	}
	return state, nil
}

// logExport stores an export event with the request details
func (h *WizardHandler) logExport(c echo.Context, action models.WizardAction, types []models.DocumentType, count int, started time.Time, err error) {
	if h.db == nil {
		return
	}
	outcome := models.WizardOutcomeSuccess
	if err != nil {
		outcome = models.WizardOutcomeFailure
	}
	services.LogWizardEvent(h.db, middleware.GetSessionID(c), wizard.Event{
		Action:        action,
		Outcome:       outcome,
		From:          models.StepPreview,
		To:            models.StepPreview,
		DocumentTypes: types,
		DocumentCount: count,
		Err:           err,
		Duration:      time.Since(started),
	}, middleware.GetEventMeta(c))
}

// DocumentPDF prints one generated document
func (h *WizardHandler) DocumentPDF(c echo.Context) error {
	started := time.Now()
	ctx := c.Request().Context()

	state, err := previewState(c)
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(state.GeneratedDocuments) {
		return echo.NewHTTPError(http.StatusNotFound, i18n.T(ctx, "wizard.errors.document_not_found"))
	}
	doc := state.GeneratedDocuments[index]

	if h.pdf == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, i18n.T(ctx, "wizard.errors.export_failed"))
	}

	pdf, err := h.pdf.RenderDocument(ctx, doc)
	h.logExport(c, models.WizardActionExportPDF, []models.DocumentType{doc.DocType}, 1, started, err)
	if err != nil {
		log.Printf("[WARNING] Error exporting %s as PDF: %v", doc.DocType, err)
		return echo.NewHTTPError(http.StatusInternalServerError, i18n.T(ctx, "wizard.errors.export_failed"))
	}

	if h.storage != nil {
		key := services.GenerateExportKey(middleware.GetSessionID(c), doc.DocType, ".pdf")
		if _, err := h.storage.Put(ctx, key, "application/pdf", pdf); err != nil {
			log.Printf("[WARNING] Failed to archive exported PDF: %v", err)
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", services.PDFFileName(index, doc.DocType)))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// ExportXLSX downloads the verified data as a spreadsheet
func (h *WizardHandler) ExportXLSX(c echo.Context) error {
	started := time.Now()
	ctx := c.Request().Context()

	state, err := previewState(c)
	if err != nil {
		return err
	}

	var form models.FormData
	if state.FormData != nil {
		form = *state.FormData
	}

	buf, err := services.ExportFormDataXLSX(ctx, form, state.SelectedTypes)
	h.logExport(c, models.WizardActionExportXLSX, state.SelectedTypes, len(state.GeneratedDocuments), started, err)
	if err != nil {
		log.Printf("[WARNING] Error exporting form data: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, i18n.T(ctx, "wizard.errors.export_failed"))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="form_data.xlsx"`)
	return c.Blob(http.StatusOK, services.XLSXContentType, buf.Bytes())
}

// Email sends every generated document to the given address
func (h *WizardHandler) Email(c echo.Context) error {
	started := time.Now()
	ctx := c.Request().Context()

	state, err := previewState(c)
	if err != nil {
		return h.renderWizard(c, http.StatusConflict, "wizard.errors.invalid_transition", "")
	}

	to, err := services.ParseRecipient(c.FormValue("email"))
	if err != nil {
		return h.renderWizard(c, http.StatusBadRequest, "wizard.errors.invalid_input", "")
	}

	types := make([]models.DocumentType, len(state.GeneratedDocuments))
	for i, doc := range state.GeneratedDocuments {
		types[i] = doc.DocType
	}

	email, err := services.BuildDocumentsEmail(to, i18n.GetLocale(ctx), state.GeneratedDocuments)
	if err == nil {
		err = services.SendEmail(h.cfg, email)
	}
	h.logExport(c, models.WizardActionEmail, types, len(types), started, err)
	if err != nil {
		log.Printf("[WARNING] Error emailing documents: %v", err)
		return h.renderWizard(c, http.StatusBadGateway, "wizard.errors.email_failed", "")
	}

	return h.renderWizard(c, http.StatusOK, "", i18n.T(ctx, "wizard.preview.email_sent", map[string]interface{}{"email": to}))
}
