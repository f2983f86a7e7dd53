package handlers

import (
	"net/http"

	"legal_wizard_go/middleware"
	"legal_wizard_go/models"
	"legal_wizard_go/services"
	"legal_wizard_go/services/i18n"

	"github.com/labstack/echo/v4"
)

// DocumentTypeInfo describes one selectable document
type DocumentTypeInfo struct {
	Code      models.DocumentType `json:"code"`
	Label     string              `json:"label"`
	LegalName string              `json:"legal_name"`
}

// State returns the session's wizard state as JSON
func (h *WizardHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.GetWizard(c).Snapshot())
}

// DocumentTypes lists the document types with labels in the request language
func (h *WizardHandler) DocumentTypes(c echo.Context) error {
	ctx := c.Request().Context()
	types := models.AllDocumentTypes()
	result := make([]DocumentTypeInfo, len(types))
	for i, d := range types {
		result[i] = DocumentTypeInfo{
			Code:      d,
			Label:     i18n.T(ctx, d.I18nKey()),
			LegalName: d.Label(),
		}
	}
	return c.JSON(http.StatusOK, result)
}

// Events returns the session's transition trail
func (h *WizardHandler) Events(c echo.Context) error {
	if h.db == nil {
		return c.JSON(http.StatusOK, []models.WizardEvent{})
	}
	events, err := services.GetSessionEvents(h.db, middleware.GetSessionID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load events")
	}
	return c.JSON(http.StatusOK, events)
}
