package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"legal_wizard_go/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when GEMINI_MODEL is not set
const DefaultGeminiModel = "gemini-2.5-flash"

// ErrEmptyModelResponse is returned when the model answers without any text
var ErrEmptyModelResponse = errors.New("empty response from model")

// contentModel is the part of *genai.GenerativeModel the collaborators use
type contentModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient extracts client and case data from source documents and
// drafts legal documents, both through the Gemini API.
type GeminiClient struct {
	client    *genai.Client
	extractor contentModel
	drafter   contentModel
	modelName string
}

// NewGeminiClient creates a client for the given API key and model
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not configured")
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	extractor := client.GenerativeModel(modelName)
	extractor.SetTemperature(0)
	extractor.ResponseMIMEType = "application/json"
	extractor.ResponseSchema = extractionSchema()
	extractor.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(extractionInstruction)}}

	drafter := client.GenerativeModel(modelName)
	drafter.SetTemperature(0.3)
	drafter.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(draftingInstruction)}}

	return &GeminiClient{
		client:    client,
		extractor: extractor,
		drafter:   drafter,
		modelName: modelName,
	}, nil
}

// Close releases the underlying connection
func (g *GeminiClient) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Model returns the configured model name
func (g *GeminiClient) Model() string {
	return g.modelName
}

// Extract sends the source document to the model and decodes the data it found
func (g *GeminiClient) Extract(ctx context.Context, file models.UploadedFile) (models.FormData, error) {
	if len(file.Data) == 0 {
		return models.FormData{}, fmt.Errorf("uploaded file %q is empty", file.Name)
	}

	resp, err := g.extractor.GenerateContent(ctx,
		genai.Blob{MIMEType: file.MimeType, Data: file.Data},
		genai.Text(extractionPrompt),
	)
	if err != nil {
		return models.FormData{}, fmt.Errorf("gemini extraction error: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return models.FormData{}, err
	}
	return ParseExtraction(text)
}

// Generate drafts one document from the verified data and returns sanitized HTML
func (g *GeminiClient) Generate(ctx context.Context, form models.FormData, docType models.DocumentType) (string, error) {
	if !docType.IsValid() {
		return "", fmt.Errorf("unknown document type: %q", docType)
	}

	resp, err := g.drafter.GenerateContent(ctx, genai.Text(BuildDraftPrompt(form, docType)))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	html := SanitizeDocumentHTML(text)
	if html == "" {
		return "", fmt.Errorf("draft for %s: %w", docType, ErrEmptyModelResponse)
	}
	return html, nil
}

// responseText concatenates the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyModelResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyModelResponse
	}
	return sb.String(), nil
}

// extractionSchema mirrors models.FormData. Nothing is required: absent
// fields are expected.
func extractionSchema() *genai.Schema {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"client": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"fullName":    str("الاسم الكامل للموكل"),
					"dob":         str("تاريخ الازدياد"),
					"cin":         str("رقم البطاقة الوطنية للتعريف"),
					"address":     str("العنوان"),
					"bankAccount": str("رقم الحساب البنكي"),
				},
			},
			"case": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type":       str("نوع القضية"),
					"references": str("مراجع الملف"),
					"fees":       str("مبلغ الأتعاب"),
					"advance":    str("التسبيق المدفوع"),
					"costs":      str("المصاريف"),
				},
			},
		},
	}
}

// ParseExtraction decodes the model's JSON answer into FormData. It accepts
// code fences, surrounding prose, null and numeric values; unknown keys are ignored.
func ParseExtraction(text string) (models.FormData, error) {
	body := StripCodeFence(text)
	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end < start {
		return models.FormData{}, fmt.Errorf("no JSON object in model response")
	}

	// Models add keys like "confidence" next to the groups; only the
	// groups themselves have to be objects.
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body[start:end+1]), &top); err != nil {
		return models.FormData{}, fmt.Errorf("failed to decode extraction: %w", err)
	}

	groups := make(map[string]map[string]interface{}, len(extractionGroups))
	for _, group := range extractionGroups {
		raw, ok := top[group]
		if !ok {
			continue
		}
		var values map[string]interface{}
		if err := json.Unmarshal(raw, &values); err != nil {
			return models.FormData{}, fmt.Errorf("failed to decode extraction group %q: %w", group, err)
		}
		groups[group] = values
	}

	var form models.FormData
	for _, field := range models.FormFields {
		group, name, _ := strings.Cut(field.Key, ".")
		field.Set(&form, stringValue(groups[group][name]))
	}
	return form.Normalize(), nil
}

// extractionGroups are the top-level keys of an extraction answer
var extractionGroups = []string{"client", "case"}

func stringValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ErrAIUnavailable is returned by UnavailableAI
var ErrAIUnavailable = errors.New("AI backend not configured")

// UnavailableAI stands in for GeminiClient when no API key is configured;
// every call fails so the wizard shows its usual error message.
type UnavailableAI struct{}

func (UnavailableAI) Extract(ctx context.Context, file models.UploadedFile) (models.FormData, error) {
	return models.FormData{}, ErrAIUnavailable
}

func (UnavailableAI) Generate(ctx context.Context, form models.FormData, docType models.DocumentType) (string, error) {
	return "", ErrAIUnavailable
}
