package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"legal_wizard_go/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeModel records the parts it receives and answers with a canned response
type fakeModel struct {
	parts []genai.Part
	resp  *genai.GenerateContentResponse
	err   error
}

func (f *fakeModel) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.parts = parts
	return f.resp, f.err
}

func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]genai.Part, len(texts))
	for i, t := range texts {
		parts[i] = genai.Text(t)
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	assert.Error(t, err)
}

func TestParseExtraction(t *testing.T) {
	t.Run("Plain JSON", func(t *testing.T) {
		form, err := ParseExtraction(`{"client":{"fullName":"Ali","cin":"AB1234"},"case":{}}`)
		require.NoError(t, err)
		assert.Equal(t, models.FormData{Client: models.ClientData{FullName: "Ali", NationalID: "AB1234"}}, form)
	})

	t.Run("Fenced with prose, nulls and numbers", func(t *testing.T) {
		text := "Here is the data:\n```json\n{\"client\":{\"fullName\":\" سعيد \",\"dob\":null},\"case\":{\"fees\":5000,\"advance\":1500.5,\"extra\":\"x\"}}\n```"
		form, err := ParseExtraction(text)
		require.NoError(t, err)
		assert.Equal(t, "سعيد", form.Client.FullName)
		assert.Equal(t, "", form.Client.DateOfBirth)
		assert.Equal(t, "5000", form.Case.Fees)
		assert.Equal(t, "1500.5", form.Case.Advance)
	})

	t.Run("Scalar keys next to the groups", func(t *testing.T) {
		form, err := ParseExtraction(`{"client":{"fullName":"Ali"},"case":{},"confidence":0.9}`)
		require.NoError(t, err)
		assert.Equal(t, models.FormData{Client: models.ClientData{FullName: "Ali"}}, form)

		form, err = ParseExtraction(`{"notes":"blurry scan","client":{"cin":"AB1234"},"case":{"fees":"5000"},"fields":["a"]}`)
		require.NoError(t, err)
		assert.Equal(t, "AB1234", form.Client.NationalID)
		assert.Equal(t, "5000", form.Case.Fees)
	})

	t.Run("Null group", func(t *testing.T) {
		form, err := ParseExtraction(`{"client":null,"case":{"fees":"5000"}}`)
		require.NoError(t, err)
		assert.Equal(t, "", form.Client.FullName)
		assert.Equal(t, "5000", form.Case.Fees)
	})

	t.Run("Missing groups", func(t *testing.T) {
		form, err := ParseExtraction(`{}`)
		require.NoError(t, err)
		assert.True(t, form.IsEmpty())
	})

	t.Run("Not JSON", func(t *testing.T) {
		_, err := ParseExtraction("I could not read the document")
		assert.Error(t, err)

		_, err = ParseExtraction(`{"client": "Ali"}`)
		assert.Error(t, err)
	})
}

func TestBuildDraftPrompt(t *testing.T) {
	form := models.FormData{
		Client: models.ClientData{FullName: "Ali"},
		Case:   models.CaseData{Fees: "5000"},
	}

	for _, d := range models.AllDocumentTypes() {
		t.Run(string(d), func(t *testing.T) {
			prompt := BuildDraftPrompt(form, d)
			assert.Contains(t, prompt, d.Label())
			assert.Contains(t, prompt, "Ali")
			assert.Contains(t, prompt, "5000")
			assert.Contains(t, prompt, "مضمون الوثيقة")
		})
	}

	prompt := BuildDraftPrompt(models.FormData{}, models.DocumentTypeFeeAgreement)
	assert.Equal(t, 10, strings.Count(prompt, missingValue))
}

func TestGeminiExtract(t *testing.T) {
	file := models.UploadedFile{Name: "id.png", MimeType: "image/png", Data: []byte("\x89PNG")}

	t.Run("Sends the file and decodes the answer", func(t *testing.T) {
		model := &fakeModel{resp: textResponse(`{"client":{"fullName":"Ali"},`, `"case":{"type":"مدني"}}`)}
		g := &GeminiClient{extractor: model}

		form, err := g.Extract(context.Background(), file)
		require.NoError(t, err)
		assert.Equal(t, "Ali", form.Client.FullName)
		assert.Equal(t, "مدني", form.Case.Type)

		require.Len(t, model.parts, 2)
		blob, ok := model.parts[0].(genai.Blob)
		require.True(t, ok)
		assert.Equal(t, "image/png", blob.MIMEType)
		assert.Equal(t, file.Data, blob.Data)
	})

	t.Run("Upstream error", func(t *testing.T) {
		g := &GeminiClient{extractor: &fakeModel{err: errors.New("quota exceeded")}}
		_, err := g.Extract(context.Background(), file)
		assert.ErrorContains(t, err, "quota exceeded")
	})

	t.Run("No candidates", func(t *testing.T) {
		g := &GeminiClient{extractor: &fakeModel{resp: &genai.GenerateContentResponse{}}}
		_, err := g.Extract(context.Background(), file)
		assert.ErrorIs(t, err, ErrEmptyModelResponse)
	})

	t.Run("Empty file is rejected before calling the model", func(t *testing.T) {
		model := &fakeModel{}
		g := &GeminiClient{extractor: model}
		_, err := g.Extract(context.Background(), models.UploadedFile{Name: "empty.pdf"})
		assert.Error(t, err)
		assert.Nil(t, model.parts)
	})
}

func TestGeminiGenerate(t *testing.T) {
	form := models.FormData{Client: models.ClientData{FullName: "Ali"}}

	t.Run("Returns sanitized HTML", func(t *testing.T) {
		model := &fakeModel{resp: textResponse("```html\n<div dir=\"rtl\"><h1>وكالة عامة</h1><script>x()</script></div>\n```")}
		g := &GeminiClient{drafter: model}

		html, err := g.Generate(context.Background(), form, models.DocumentTypeGeneralPowerOfAttorney)
		require.NoError(t, err)
		assert.Equal(t, `<div dir="rtl"><h1>وكالة عامة</h1></div>`, html)

		require.Len(t, model.parts, 1)
		prompt, ok := model.parts[0].(genai.Text)
		require.True(t, ok)
		assert.Contains(t, string(prompt), "وكالة عامة")
	})

	t.Run("Unknown type", func(t *testing.T) {
		g := &GeminiClient{drafter: &fakeModel{}}
		_, err := g.Generate(context.Background(), form, models.DocumentType("lease"))
		assert.Error(t, err)
	})

	t.Run("Nothing left after sanitizing", func(t *testing.T) {
		g := &GeminiClient{drafter: &fakeModel{resp: textResponse("<script>only()</script>")}}
		_, err := g.Generate(context.Background(), form, models.DocumentTypeFeeAgreement)
		assert.ErrorIs(t, err, ErrEmptyModelResponse)
	})
}

func TestGeminiClientClose(t *testing.T) {
	assert.NoError(t, (&GeminiClient{}).Close())
}

func TestUnavailableAI(t *testing.T) {
	_, err := UnavailableAI{}.Extract(context.Background(), models.UploadedFile{})
	assert.ErrorIs(t, err, ErrAIUnavailable)

	_, err = UnavailableAI{}.Generate(context.Background(), models.FormData{}, models.DocumentTypeFeeAgreement)
	assert.ErrorIs(t, err, ErrAIUnavailable)
}
