package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WizardAction represents the transition that was attempted
type WizardAction string

const (
	WizardActionSelectDocuments WizardAction = "SELECT_DOCUMENTS"
	WizardActionSubmitFile      WizardAction = "SUBMIT_FILE"
	WizardActionVerifyData      WizardAction = "VERIFY_DATA"
	WizardActionBack            WizardAction = "BACK"
	WizardActionReset           WizardAction = "RESET"
	WizardActionExportPDF       WizardAction = "EXPORT_PDF"
	WizardActionExportXLSX      WizardAction = "EXPORT_XLSX"
	WizardActionEmail           WizardAction = "EMAIL"
)

// WizardOutcome is the result of a transition
type WizardOutcome string

const (
	WizardOutcomeSuccess   WizardOutcome = "SUCCESS"
	WizardOutcomeFailure   WizardOutcome = "FAILURE"
	WizardOutcomeDiscarded WizardOutcome = "DISCARDED" // result arrived after a reset
)

// WizardEvent is an immutable diagnostic record of one wizard transition.
// It never carries form values or document content.
type WizardEvent struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_wizard_event_created_at" json:"created_at"`

	SessionID string        `gorm:"type:uuid;not null;index:idx_wizard_event_session" json:"session_id"`
	Action    WizardAction  `gorm:"not null;index:idx_wizard_event_action" json:"action"`
	Outcome   WizardOutcome `gorm:"not null" json:"outcome"`
	FromStep  string        `gorm:"not null" json:"from_step"`
	ToStep    string        `gorm:"not null" json:"to_step"`

	// Comma separated document type codes involved in the transition
	DocumentTypes string `json:"document_types,omitempty"`
	DocumentCount int    `json:"document_count"`
	Detail        string `gorm:"type:text" json:"detail,omitempty"` // error cause for failures
	DurationMS    int64  `json:"duration_ms"`

	// Request metadata (optional)
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// BeforeCreate generates UUID
func (e *WizardEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// BeforeUpdate prevents modification of events (immutability)
func (e *WizardEvent) BeforeUpdate(tx *gorm.DB) error {
	return gorm.ErrRecordNotFound
}

// BeforeDelete prevents deletion of events (immutability)
func (e *WizardEvent) BeforeDelete(tx *gorm.DB) error {
	return gorm.ErrRecordNotFound
}

// TableName specifies the table name
func (WizardEvent) TableName() string {
	return "wizard_events"
}
