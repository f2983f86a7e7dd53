package models

import "fmt"

// Step is a screen of the wizard. The zero value is the first step.
type Step int

// Wizard steps, in order
const (
	StepDocumentSelect Step = iota
	StepFileUpload
	StepDataVerification
	StepPreview
)

var stepNames = [...]string{
	StepDocumentSelect:   "DOCUMENT_SELECT",
	StepFileUpload:       "FILE_UPLOAD",
	StepDataVerification: "DATA_VERIFICATION",
	StepPreview:          "PREVIEW",
}

// Steps returns all steps in order
func Steps() []Step {
	return []Step{StepDocumentSelect, StepFileUpload, StepDataVerification, StepPreview}
}

// IsValid reports whether s is a known step
func (s Step) IsValid() bool {
	return s >= StepDocumentSelect && s <= StepPreview
}

// Index returns the zero-based position of the step in the progress indicator
func (s Step) Index() int {
	return int(s)
}

// String returns the step name
func (s Step) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

// LabelKey returns the translation key of the step label
func (s Step) LabelKey() string {
	switch s {
	case StepDocumentSelect:
		return "wizard.steps.document_select"
	case StepFileUpload:
		return "wizard.steps.file_upload"
	case StepDataVerification:
		return "wizard.steps.data_verification"
	case StepPreview:
		return "wizard.steps.preview"
	default:
		return ""
	}
}

// Next returns the step after s. ok is false on the last step.
func (s Step) Next() (next Step, ok bool) {
	if !s.IsValid() || s == StepPreview {
		return s, false
	}
	return s + 1, true
}

// Prev returns the step before s. ok is false on the first step.
func (s Step) Prev() (prev Step, ok bool) {
	if !s.IsValid() || s == StepDocumentSelect {
		return s, false
	}
	return s - 1, true
}

// MarshalText encodes the step by name
func (s Step) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid step %d", int(s))
	}
	return []byte(stepNames[s]), nil
}

// UnmarshalText decodes a step name
func (s *Step) UnmarshalText(text []byte) error {
	for i, name := range stepNames {
		if name == string(text) {
			*s = Step(i)
			return nil
		}
	}
	return fmt.Errorf("unknown step %q", string(text))
}
