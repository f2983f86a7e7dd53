package wizard

import (
	"context"
	"fmt"

	"legal_wizard_go/models"

	"golang.org/x/sync/errgroup"
)

// GenerateAll drafts one document per entry of types, all concurrently.
// The result is either every document, in the order of types, or the first
// error. A failure cancels the context handed to the remaining calls and
// discards whatever they produce.
func GenerateAll(ctx context.Context, gen Generator, form models.FormData, types []models.DocumentType) ([]models.GeneratedDocument, error) {
	docs := make([]models.GeneratedDocument, len(types))

	g, gctx := errgroup.WithContext(ctx)
	for i, docType := range types {
		g.Go(func() error {
			html, err := gen.Generate(gctx, form, docType)
			if err != nil {
				return fmt.Errorf("failed to generate %s: %w", docType, err)
			}
			docs[i] = models.GeneratedDocument{DocType: docType, HTMLContent: html}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
