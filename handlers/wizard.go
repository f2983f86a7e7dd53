package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"legal_wizard_go/config"
	"legal_wizard_go/middleware"
	"legal_wizard_go/models"
	"legal_wizard_go/services"
	"legal_wizard_go/services/i18n"
	"legal_wizard_go/services/wizard"
	"legal_wizard_go/templates/pages"
	"legal_wizard_go/templates/partials"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PDFRenderer prints a generated document
type PDFRenderer interface {
	RenderDocument(ctx context.Context, doc models.GeneratedDocument) ([]byte, error)
}

// WizardHandler serves the wizard pages, its JSON API and the exports
type WizardHandler struct {
	cfg         *config.Config
	storage     services.StorageProvider
	pdf         PDFRenderer
	db          *gorm.DB
	aiAvailable bool
}

// WizardDeps wires a WizardHandler. Storage, PDF and DB are optional.
type WizardDeps struct {
	Config      *config.Config
	Storage     services.StorageProvider
	PDF         PDFRenderer
	DB          *gorm.DB
	AIAvailable bool
}

// NewWizardHandler creates the handler set
func NewWizardHandler(d WizardDeps) *WizardHandler {
	cfg := d.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &WizardHandler{
		cfg:         cfg,
		storage:     d.Storage,
		pdf:         d.PDF,
		db:          d.DB,
		aiAvailable: d.AIAvailable,
	}
}

// wizardStatus maps a controller error to the response status
func wizardStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, wizard.ErrBusy),
		errors.Is(err, wizard.ErrInvalidTransition),
		errors.Is(err, wizard.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, wizard.ErrExtractionFailed),
		errors.Is(err, wizard.ErrGenerationFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// alertKey returns the message for errors the controller does not record in its state
func alertKey(err error) string {
	switch {
	case errors.Is(err, wizard.ErrBusy):
		return "wizard.errors.busy"
	case errors.Is(err, wizard.ErrInvalidTransition):
		return "wizard.errors.invalid_transition"
	}
	return ""
}

// renderWizard renders the current state. htmx requests get the #wizard
// fragment; plain form posts that succeeded are redirected to the page.
func (h *WizardHandler) renderWizard(c echo.Context, status int, alert, notice string) error {
	ctrl := middleware.GetWizard(c)
	if ctrl == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "wizard session missing")
	}

	if c.Request().Method == http.MethodPost && status == http.StatusOK && notice == "" && !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	ctx := c.Request().Context()
	view := partials.WizardView{
		State:         ctrl.Snapshot(),
		CSRFToken:     middleware.GetCSRFToken(c),
		DocumentTypes: models.AllDocumentTypes(),
		AIAvailable:   h.aiAvailable,
	}
	if alert != "" {
		view.Alert = i18n.T(ctx, alert)
	}
	view.Notice = notice

	if isHTMX(c) {
		return render(c, status, partials.Wizard(view))
	}
	return render(c, status, pages.WizardPage(view))
}

// respond renders the outcome of a controller transition
func (h *WizardHandler) respond(c echo.Context, err error) error {
	return h.renderWizard(c, wizardStatus(err), alertKey(err), "")
}

// Show renders the current step
func (h *WizardHandler) Show(c echo.Context) error {
	return h.renderWizard(c, http.StatusOK, "", "")
}

// SelectDocuments handles the document selection form
func (h *WizardHandler) SelectDocuments(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return h.renderWizard(c, http.StatusBadRequest, "wizard.errors.invalid_input", "")
	}

	types, err := models.ParseDocumentTypes(params["doc_types"])
	if err != nil {
		log.Printf("[WARNING] Rejected document selection: %v", err)
		return h.renderWizard(c, http.StatusBadRequest, "wizard.errors.invalid_input", "")
	}

	return h.respond(c, middleware.GetWizard(c).SelectDocuments(types))
}

// Upload reads the source document, archives a copy and runs the extraction
func (h *WizardHandler) Upload(c echo.Context) error {
	ctrl := middleware.GetWizard(c)

	// Checked up front so nothing is archived for a request that will be rejected
	if ctrl.Busy() {
		return h.respond(c, wizard.ErrBusy)
	}
	if ctrl.Step() != models.StepFileUpload {
		return h.respond(c, wizard.ErrInvalidTransition)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return h.renderWizard(c, http.StatusBadRequest, "wizard.errors.file_required", "")
	}

	file, err := services.ReadSourceDocument(fileHeader, h.cfg.MaxUploadBytes())
	if err != nil {
		log.Printf("[WARNING] Rejected upload %q: %v", fileHeader.Filename, err)
		return h.renderWizard(c, http.StatusBadRequest, "wizard.errors.file_invalid", "")
	}

	ctx := c.Request().Context()
	if h.storage != nil {
		if err := services.ArchiveSourceDocument(ctx, h.storage, middleware.GetSessionID(c), &file); err != nil {
			log.Printf("[WARNING] %v", err)
		}
	}

	err = ctrl.SubmitFile(ctx, file)
	// Another request won the race; the file never reached the wizard
	if file.StorageKey != "" && (errors.Is(err, wizard.ErrBusy) || errors.Is(err, wizard.ErrInvalidTransition)) {
		if delErr := h.storage.Delete(ctx, file.StorageKey); delErr != nil {
			log.Printf("[WARNING] Failed to remove archived upload %s: %v", file.StorageKey, delErr)
		}
	}
	return h.respond(c, err)
}

// Verify takes the reviewed data and generates the documents
func (h *WizardHandler) Verify(c echo.Context) error {
	var form models.FormData
	for _, field := range models.FormFields {
		field.Set(&form, c.FormValue(field.Key))
	}

	return h.respond(c, middleware.GetWizard(c).VerifyData(c.Request().Context(), form.Normalize()))
}

// Back returns to the previous step
func (h *WizardHandler) Back(c echo.Context) error {
	return h.respond(c, middleware.GetWizard(c).Back())
}

// Reset starts over
func (h *WizardHandler) Reset(c echo.Context) error {
	middleware.GetWizard(c).Reset()
	return h.renderWizard(c, http.StatusOK, "", "")
}
