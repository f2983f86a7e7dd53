package wizard

import (
	"time"

	"legal_wizard_go/models"
)

// Event describes one completed transition
type Event struct {
	Action        models.WizardAction
	Outcome       models.WizardOutcome
	From          models.Step
	To            models.Step
	DocumentTypes []models.DocumentType
	DocumentCount int
	Err           error
	Duration      time.Duration
}
