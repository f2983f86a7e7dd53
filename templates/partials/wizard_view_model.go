package partials

import (
	"legal_wizard_go/models"
	"legal_wizard_go/services/wizard"
)

// WizardView holds what the wizard screens need to render
type WizardView struct {
	State         wizard.State
	CSRFToken     string
	DocumentTypes []models.DocumentType
	// Alert is a one-off error for a rejected request (busy, bad input)
	Alert string
	// Notice is a one-off success message (email sent)
	Notice string
	// AIAvailable is false when no extraction/generation backend is configured
	AIAvailable bool
}
