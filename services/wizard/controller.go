package wizard

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"legal_wizard_go/models"
	"legal_wizard_go/services/i18n"
)

// State is a point-in-time copy of the wizard, safe to render or serialize
type State struct {
	Step               models.Step                `json:"step"`
	StepIndex          int                        `json:"step_index"`
	SelectedTypes      []models.DocumentType      `json:"selected_types"`
	UploadedFile       *models.UploadedFile       `json:"uploaded_file,omitempty"`
	FormData           *models.FormData           `json:"form_data,omitempty"`
	GeneratedDocuments []models.GeneratedDocument `json:"generated_documents"`
	Loading            bool                       `json:"loading"`
	LoadingMessage     string                     `json:"loading_message,omitempty"`
	Error              string                     `json:"error,omitempty"`
	ErrorKey           string                     `json:"error_key,omitempty"`
}

// Config wires a Controller to its collaborators
type Config struct {
	Extractor Extractor
	Generator Generator
	// Locale used to render loading and error messages. Defaults to the i18n default.
	Locale string
	// OnEvent, when set, receives every completed transition. It is called
	// without the controller lock held.
	OnEvent func(Event)
}

// Controller drives one wizard session through
// DOCUMENT_SELECT → FILE_UPLOAD → DATA_VERIFICATION → PREVIEW.
//
// Every transition is reentrancy-safe: while an extraction or generation is
// outstanding, other transitions fail with ErrBusy. Reset is the exception;
// it always succeeds and the outstanding operation's result is discarded.
type Controller struct {
	extractor Extractor
	generator Generator
	onEvent   func(Event)

	mu     sync.Mutex
	locale string

	step          models.Step
	selectedTypes []models.DocumentType
	uploadedFile  *models.UploadedFile
	formData      *models.FormData
	generatedDocs []models.GeneratedDocument
	loadingKey    string
	errorKey      string

	// busy is set while a collaborator call is outstanding; op identifies it.
	busy bool
	op   uint64
}

// New creates a controller on the first step
func New(cfg Config) *Controller {
	locale := cfg.Locale
	if locale == "" {
		locale = i18n.DefaultLanguage()
	}
	return &Controller{
		extractor: cfg.Extractor,
		generator: cfg.Generator,
		onEvent:   cfg.OnEvent,
		locale:    locale,
		step:      models.StepDocumentSelect,
	}
}

// SetLocale changes the language of the messages returned by Snapshot
func (c *Controller) SetLocale(lang string) {
	c.mu.Lock()
	c.locale = lang
	c.mu.Unlock()
}

// Step returns the current step
func (c *Controller) Step() models.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Busy reports whether a collaborator call is outstanding
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Step:               c.step,
		StepIndex:          c.step.Index(),
		SelectedTypes:      append([]models.DocumentType{}, c.selectedTypes...),
		GeneratedDocuments: append([]models.GeneratedDocument{}, c.generatedDocs...),
		Loading:            c.busy,
		ErrorKey:           c.errorKey,
	}
	if c.uploadedFile != nil {
		f := *c.uploadedFile
		s.UploadedFile = &f
	}
	if c.formData != nil {
		f := *c.formData
		s.FormData = &f
	}
	if c.busy {
		s.LoadingMessage = i18n.Translate(c.locale, c.loadingKey)
	}
	if c.errorKey != "" {
		s.Error = i18n.Translate(c.locale, c.errorKey)
	}
	return s
}

// SelectDocuments stores the chosen document types and moves to FILE_UPLOAD.
// An empty selection is accepted and later yields zero documents.
func (c *Controller) SelectDocuments(types []models.DocumentType) error {
	c.mu.Lock()
	if err := c.checkLocked(models.StepDocumentSelect, "select documents"); err != nil {
		c.mu.Unlock()
		return err
	}
	c.selectedTypes = append([]models.DocumentType(nil), types...)
	c.step = models.StepFileUpload
	c.mu.Unlock()

	c.emit(Event{
		Action:        models.WizardActionSelectDocuments,
		Outcome:       models.WizardOutcomeSuccess,
		From:          models.StepDocumentSelect,
		To:            models.StepFileUpload,
		DocumentTypes: types,
		DocumentCount: len(types),
	})
	return nil
}

// SubmitFile stores the source document and asks the Extractor for its data.
// On success the extracted data is stored and the wizard moves to
// DATA_VERIFICATION. On failure the wizard stays on FILE_UPLOAD with the
// file kept, no form data and the extraction error message set.
func (c *Controller) SubmitFile(ctx context.Context, file models.UploadedFile) error {
	op, err := c.begin(models.StepFileUpload, "submit file", msgExtracting, func() {
		f := file
		c.uploadedFile = &f
	})
	if err != nil {
		return err
	}
	defer c.release(op)

	start := time.Now()
	form, extractErr := c.extractor.Extract(ctx, file)

	ev := Event{
		Action:   models.WizardActionSubmitFile,
		From:     models.StepFileUpload,
		Duration: time.Since(start),
	}

	committed := c.commit(op, func() {
		if extractErr != nil {
			c.errorKey = msgExtractionError
			c.step = models.StepFileUpload
			return
		}
		f := form
		c.formData = &f
		c.step = models.StepDataVerification
	})

	switch {
	case !committed:
		ev.Outcome, ev.To, ev.Err = models.WizardOutcomeDiscarded, c.Step(), extractErr
		c.emit(ev)
		return ErrSuperseded
	case extractErr != nil:
		log.Printf("[WARNING] Error extracting data from %q: %v", file.Name, extractErr)
		ev.Outcome, ev.To, ev.Err = models.WizardOutcomeFailure, models.StepFileUpload, extractErr
		c.emit(ev)
		return fmt.Errorf("%w: %w", ErrExtractionFailed, extractErr)
	default:
		ev.Outcome, ev.To = models.WizardOutcomeSuccess, models.StepDataVerification
		c.emit(ev)
		return nil
	}
}

// VerifyData stores the (possibly edited) form data and generates one
// document per selected type, concurrently. All generations must succeed for
// the wizard to move to PREVIEW; on any failure it stays on
// DATA_VERIFICATION with no documents and the generation error message set.
func (c *Controller) VerifyData(ctx context.Context, form models.FormData) error {
	var types []models.DocumentType
	op, err := c.begin(models.StepDataVerification, "verify data", msgGenerating, func() {
		f := form
		c.formData = &f
		c.generatedDocs = nil
		types = append([]models.DocumentType(nil), c.selectedTypes...)
	})
	if err != nil {
		return err
	}
	defer c.release(op)

	start := time.Now()
	docs, genErr := GenerateAll(ctx, c.generator, form, types)

	ev := Event{
		Action:        models.WizardActionVerifyData,
		From:          models.StepDataVerification,
		DocumentTypes: types,
		Duration:      time.Since(start),
	}

	committed := c.commit(op, func() {
		if genErr != nil {
			c.errorKey = msgGenerationError
			c.generatedDocs = nil
			c.step = models.StepDataVerification
			return
		}
		c.generatedDocs = docs
		c.step = models.StepPreview
	})

	switch {
	case !committed:
		ev.Outcome, ev.To, ev.Err = models.WizardOutcomeDiscarded, c.Step(), genErr
		c.emit(ev)
		return ErrSuperseded
	case genErr != nil:
		log.Printf("[WARNING] Error generating document(s): %v", genErr)
		ev.Outcome, ev.To, ev.Err = models.WizardOutcomeFailure, models.StepDataVerification, genErr
		c.emit(ev)
		return fmt.Errorf("%w: %w", ErrGenerationFailed, genErr)
	default:
		ev.Outcome, ev.To, ev.DocumentCount = models.WizardOutcomeSuccess, models.StepPreview, len(docs)
		c.emit(ev)
		return nil
	}
}

// Back moves one step backwards, dropping the data that belongs to the step
// being left:
//
//	PREVIEW → DATA_VERIFICATION      generated documents dropped
//	DATA_VERIFICATION → FILE_UPLOAD  form data dropped, uploaded file kept
//	FILE_UPLOAD → DOCUMENT_SELECT    selected types dropped
//
// The error message is cleared in every case. On DOCUMENT_SELECT nothing else happens.
func (c *Controller) Back() error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}

	from := c.step
	c.errorKey = ""
	switch c.step {
	case models.StepPreview:
		c.generatedDocs = nil
	case models.StepDataVerification:
		// The uploaded file survives so the user can go forward again
		// without re-uploading.
		c.formData = nil
	case models.StepFileUpload:
		c.selectedTypes = nil
	}
	if prev, ok := c.step.Prev(); ok {
		c.step = prev
	}
	to := c.step
	c.mu.Unlock()

	c.emit(Event{
		Action:  models.WizardActionBack,
		Outcome: models.WizardOutcomeSuccess,
		From:    from,
		To:      to,
	})
	return nil
}

// Reset returns to DOCUMENT_SELECT with every piece of data, the loading flag
// and the error cleared. It is valid from any state, including while an
// operation is outstanding; that operation's result will be discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	from := c.step
	c.op++
	c.busy = false
	c.loadingKey = ""
	c.errorKey = ""
	c.step = models.StepDocumentSelect
	c.selectedTypes = nil
	c.uploadedFile = nil
	c.formData = nil
	c.generatedDocs = nil
	c.mu.Unlock()

	c.emit(Event{
		Action:  models.WizardActionReset,
		Outcome: models.WizardOutcomeSuccess,
		From:    from,
		To:      models.StepDocumentSelect,
	})
}

// checkLocked rejects the transition when busy or not on the expected step.
func (c *Controller) checkLocked(want models.Step, action string) error {
	if c.busy {
		return ErrBusy
	}
	if c.step != want {
		return fmt.Errorf("%w: cannot %s on %s", ErrInvalidTransition, action, c.step)
	}
	return nil
}

// begin validates the transition, applies mutate, clears the error and
// raises the loading flag. The returned token identifies the operation.
func (c *Controller) begin(want models.Step, action, loadingKey string, mutate func()) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkLocked(want, action); err != nil {
		return 0, err
	}
	mutate()
	c.errorKey = ""
	c.loadingKey = loadingKey
	c.busy = true
	c.op++
	return c.op, nil
}

// commit applies the outcome of operation op and lowers the loading flag in
// the same critical section. It reports false when op was superseded.
func (c *Controller) commit(op uint64, apply func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.op != op {
		return false
	}
	apply()
	c.busy = false
	c.loadingKey = ""
	return true
}

// release lowers the loading flag if op never committed (collaborator panic).
func (c *Controller) release(op uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy && c.op == op {
		c.busy = false
		c.loadingKey = ""
	}
}

func (c *Controller) emit(ev Event) {
	if c.onEvent != nil {
		c.onEvent(ev)
	}
}
