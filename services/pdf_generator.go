package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"legal_wizard_go/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFOptions contains options for PDF generation
type PDFOptions struct {
	PageOrientation string // portrait, landscape
	PageSize        string // letter, legal, A4
	MarginTop       int    // points (72 = 1 inch)
	MarginBottom    int
	MarginLeft      int
	MarginRight     int
}

// DefaultPDFOptions returns A4 portrait with 2cm margins, the usual format of
// Moroccan court filings
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		PageOrientation: "portrait",
		PageSize:        "A4",
		MarginTop:       57,
		MarginBottom:    57,
		MarginLeft:      57,
		MarginRight:     57,
	}
}

// paperSize returns width and height in inches
func (o PDFOptions) paperSize() (float64, float64) {
	var w, h float64
	switch o.PageSize {
	case "legal":
		w, h = 8.5, 14.0
	case "letter":
		w, h = 8.5, 11.0
	default: // A4
		w, h = 8.27, 11.69
	}
	if o.PageOrientation == "landscape" {
		w, h = h, w
	}
	return w, h
}

// PDFRenderer prints HTML with headless Chrome
type PDFRenderer struct {
	chromePath string
	options    PDFOptions
}

// NewPDFRenderer creates a renderer. An empty chromePath uses the browser found on PATH.
func NewPDFRenderer(chromePath string, options PDFOptions) *PDFRenderer {
	return &PDFRenderer{chromePath: chromePath, options: options}
}

// RenderDocument wraps a generated document in the print stylesheet and prints it
func (r *PDFRenderer) RenderDocument(ctx context.Context, doc models.GeneratedDocument) ([]byte, error) {
	return r.GeneratePDF(ctx, WrapHTMLForPDF(doc.DocType.Label(), doc.HTMLContent))
}

// GeneratePDF renders a full HTML page to PDF
func (r *PDFRenderer) GeneratePDF(ctx context.Context, htmlContent string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	// Custom Chrome path (for headless-shell in Docker)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	paperWidth, paperHeight := r.options.paperSize()
	inches := func(points int) float64 { return float64(points) / 72.0 }

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		// Give web fonts a moment to load
		chromedp.Sleep(100),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(inches(r.options.MarginTop)).
				WithMarginBottom(inches(r.options.MarginBottom)).
				WithMarginLeft(inches(r.options.MarginLeft)).
				WithMarginRight(inches(r.options.MarginRight)).
				WithPrintBackground(true).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// WrapHTMLForPDF wraps a document fragment in a right-to-left Arabic page
func WrapHTMLForPDF(title, content string) string {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
<meta charset="UTF-8">
<title>`)
	sb.WriteString(html.EscapeString(title))
	sb.WriteString(`</title>
<style>
	@page { size: A4; }
	body {
		direction: rtl;
		text-align: right;
		font-family: "Amiri", "Traditional Arabic", "Noto Naskh Arabic", serif;
		font-size: 14pt;
		line-height: 1.8;
		color: #000;
	}
	h1 { text-align: center; font-size: 20pt; margin-bottom: 24pt; }
	h2 { font-size: 16pt; margin-top: 18pt; }
	p { text-align: justify; margin: 0 0 10pt 0; }
	table { width: 100%; border-collapse: collapse; margin: 12pt 0; }
	td, th { border: 1px solid #333; padding: 6pt; }
	.signature-block { margin-top: 48pt; display: flex; justify-content: space-between; }
</style>
</head>
<body>
`)
	sb.WriteString(content)
	sb.WriteString("\n</body>\n</html>")
	return sb.String()
}

// PDFFileName returns the download name of a generated document
func PDFFileName(index int, docType models.DocumentType) string {
	return fmt.Sprintf("%02d_%s.pdf", index+1, docType)
}
