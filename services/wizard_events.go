package services

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"legal_wizard_go/models"
	"legal_wizard_go/services/wizard"

	"gorm.io/gorm"
)

// EventMeta carries the request details stored next to an event
type EventMeta struct {
	IPAddress string
	UserAgent string
}

// maxEventDetail bounds the stored error cause
const maxEventDetail = 1000

// eventClock hands out strictly increasing timestamps so a trail sorted by
// created_at follows emission order even when inserts land out of order
var eventClock struct {
	sync.Mutex
	last time.Time
}

func nextEventTime() time.Time {
	eventClock.Lock()
	defer eventClock.Unlock()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if !now.After(eventClock.last) {
		now = eventClock.last.Add(time.Microsecond)
	}
	eventClock.last = now
	return now
}

// NewWizardEvent converts a controller event into its stored form
func NewWizardEvent(sessionID string, e wizard.Event, meta EventMeta) models.WizardEvent {
	codes := make([]string, len(e.DocumentTypes))
	for i, d := range e.DocumentTypes {
		codes[i] = string(d)
	}

	var detail string
	if e.Err != nil {
		detail = truncate(e.Err.Error(), maxEventDetail)
	}

	return models.WizardEvent{
		CreatedAt:     nextEventTime(),
		SessionID:     sessionID,
		Action:        e.Action,
		Outcome:       e.Outcome,
		FromStep:      e.From.String(),
		ToStep:        e.To.String(),
		DocumentTypes: strings.Join(codes, ","),
		DocumentCount: e.DocumentCount,
		Detail:        detail,
		DurationMS:    e.Duration.Milliseconds(),
		IPAddress:     meta.IPAddress,
		UserAgent:     meta.UserAgent,
	}
}

// SaveWizardEvent stores one event
func SaveWizardEvent(db *gorm.DB, sessionID string, e wizard.Event, meta EventMeta) error {
	if db == nil {
		return errors.New("database not initialized")
	}
	event := NewWizardEvent(sessionID, e, meta)
	return db.Create(&event).Error
}

// LogWizardEvent stamps the event now and stores it asynchronously
func LogWizardEvent(db *gorm.DB, sessionID string, e wizard.Event, meta EventMeta) {
	event := NewWizardEvent(sessionID, e, meta)
	// Run in goroutine to avoid blocking the request
	go func() {
		if db == nil {
			log.Printf("[AUDIT] Failed to create wizard event: database not initialized")
			return
		}
		if err := db.Create(&event).Error; err != nil {
			log.Printf("[AUDIT] Failed to create wizard event: %v", err)
		}
	}()
}

// NewWizardEventRecorder returns a controller OnEvent hook that stores the
// session's transitions. A nil db disables the trail.
func NewWizardEventRecorder(db *gorm.DB, sessionID string) func(wizard.Event) {
	return func(e wizard.Event) {
		if db == nil {
			return
		}
		LogWizardEvent(db, sessionID, e, EventMeta{})
	}
}

// GetSessionEvents returns a session's trail, oldest first
func GetSessionEvents(db *gorm.DB, sessionID string) ([]models.WizardEvent, error) {
	var events []models.WizardEvent
	err := db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}
