package wizard

import (
	"context"

	"legal_wizard_go/models"
)

// Extractor reads a source document and returns whatever client and case
// data it could find. Any field may be left blank.
type Extractor interface {
	Extract(ctx context.Context, file models.UploadedFile) (models.FormData, error)
}

// Generator drafts one legal document from verified data and returns it as
// a self-contained HTML fragment.
type Generator interface {
	Generate(ctx context.Context, form models.FormData, docType models.DocumentType) (string, error)
}

// ExtractorFunc adapts a function to Extractor
type ExtractorFunc func(ctx context.Context, file models.UploadedFile) (models.FormData, error)

// Extract calls f
func (f ExtractorFunc) Extract(ctx context.Context, file models.UploadedFile) (models.FormData, error) {
	return f(ctx, file)
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(ctx context.Context, form models.FormData, docType models.DocumentType) (string, error)

// Generate calls f
func (f GeneratorFunc) Generate(ctx context.Context, form models.FormData, docType models.DocumentType) (string, error) {
	return f(ctx, form, docType)
}
