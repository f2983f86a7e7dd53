package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepOrder(t *testing.T) {
	steps := Steps()
	require.Len(t, steps, 4)
	for i, s := range steps {
		assert.Equal(t, i, s.Index())
		assert.True(t, s.IsValid())
		assert.NotEmpty(t, s.LabelKey())
	}
	assert.Equal(t, StepDocumentSelect, Step(0), "zero value is the initial step")
}

func TestStepNextPrev(t *testing.T) {
	tests := []struct {
		step    Step
		next    Step
		hasNext bool
		prev    Step
		hasPrev bool
	}{
		{StepDocumentSelect, StepFileUpload, true, StepDocumentSelect, false},
		{StepFileUpload, StepDataVerification, true, StepDocumentSelect, true},
		{StepDataVerification, StepPreview, true, StepFileUpload, true},
		{StepPreview, StepPreview, false, StepDataVerification, true},
	}

	for _, tt := range tests {
		t.Run(tt.step.String(), func(t *testing.T) {
			next, ok := tt.step.Next()
			assert.Equal(t, tt.hasNext, ok)
			assert.Equal(t, tt.next, next)

			prev, ok := tt.step.Prev()
			assert.Equal(t, tt.hasPrev, ok)
			assert.Equal(t, tt.prev, prev)
		})
	}
}

func TestStepInvalid(t *testing.T) {
	s := Step(9)
	assert.False(t, s.IsValid())
	assert.Equal(t, "Step(9)", s.String())
	assert.Equal(t, "", s.LabelKey())

	_, ok := s.Next()
	assert.False(t, ok)
	_, err := s.MarshalText()
	assert.Error(t, err)
}

func TestStepJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Step{"step": StepDataVerification})
	require.NoError(t, err)
	assert.JSONEq(t, `{"step":"DATA_VERIFICATION"}`, string(b))

	var decoded struct {
		Step Step `json:"step"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"step":"PREVIEW"}`), &decoded))
	assert.Equal(t, StepPreview, decoded.Step)

	assert.Error(t, json.Unmarshal([]byte(`{"step":"DONE"}`), &decoded))
}
