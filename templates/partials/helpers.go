package partials

import (
	"fmt"

	"legal_wizard_go/models"

	"github.com/a-h/templ"
)

// Helper function to format file size
func formatFileSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// loadingIndicators are shown by htmx while the matching request is in flight
var loadingIndicators = []string{"extracting", "generating"}

var uploadFormAttrs = templ.Attributes{
	"enctype":         "multipart/form-data",
	"hx-encoding":     "multipart/form-data",
	"hx-indicator":    "#loading-extracting",
	"hx-disabled-elt": "find button",
}

var verifyFormAttrs = templ.Attributes{
	"hx-indicator":    "#loading-generating",
	"hx-disabled-elt": "find button",
}

var emailFormAttrs = templ.Attributes{"class": "email-form"}

func isSelected(selected []models.DocumentType, d models.DocumentType) bool {
	for _, s := range selected {
		if s == d {
			return true
		}
	}
	return false
}

// fieldGroup is one fieldset of the verification screen
type fieldGroup struct {
	Name   string
	Fields []models.FormField
}

// fieldGroups splits FormFields into consecutive groups, keeping their order
func fieldGroups() []fieldGroup {
	var groups []fieldGroup
	for _, field := range models.FormFields {
		if n := len(groups); n == 0 || groups[n-1].Name != field.Group {
			groups = append(groups, fieldGroup{Name: field.Group})
		}
		groups[len(groups)-1].Fields = append(groups[len(groups)-1].Fields, field)
	}
	return groups
}

// fieldValue reads a field from the extracted data, blank before extraction
func fieldValue(form *models.FormData, field models.FormField) string {
	if form == nil {
		return ""
	}
	return field.Get(form)
}

func pdfURL(index int) templ.SafeURL {
	return templ.SafeURL(fmt.Sprintf("/wizard/documents/%d/pdf", index))
}
