package wizard

import "errors"

var (
	// ErrBusy is returned when a transition is attempted while an extraction
	// or generation is still outstanding
	ErrBusy = errors.New("an operation is already in progress")
	// ErrInvalidTransition is returned when the operation does not apply to the current step
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrExtractionFailed wraps any error returned by the Extractor
	ErrExtractionFailed = errors.New("extraction failed")
	// ErrGenerationFailed wraps any error returned by a Generator call
	ErrGenerationFailed = errors.New("generation failed")
	// ErrSuperseded is returned when a reset happened while the operation was outstanding
	ErrSuperseded = errors.New("operation superseded by reset")
)

// Message keys surfaced to the user. Collaborator failures are not
// discriminated: every extraction failure maps to one message, every
// generation failure to another.
const (
	msgExtracting      = "wizard.loading.extracting"
	msgGenerating      = "wizard.loading.generating"
	msgExtractionError = "wizard.errors.extraction"
	msgGenerationError = "wizard.errors.generation"
)
