package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"No fence", "  <p>x</p> ", "<p>x</p>"},
		{"Html fence", "```html\n<p>x</p>\n```", "<p>x</p>"},
		{"Json fence", "```json\n{\"a\":1}\n```\n", "{\"a\":1}"},
		{"Bare fence", "```\n<h1>t</h1>```", "<h1>t</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFence(tt.input))
		})
	}
}

func TestSanitizeDocumentHTML(t *testing.T) {
	t.Run("Removes scripts and handlers", func(t *testing.T) {
		out := SanitizeDocumentHTML(`<h1 onclick="steal()">عقد</h1><script>alert(1)</script><p>نص</p>`)
		assert.NotContains(t, out, "script")
		assert.NotContains(t, out, "onclick")
		assert.Contains(t, out, "<h1>عقد</h1>")
		assert.Contains(t, out, "<p>نص</p>")
	})

	t.Run("Keeps direction and alignment", func(t *testing.T) {
		out := SanitizeDocumentHTML(`<div dir="rtl" class="signature-block"><p style="text-align: center">توقيع</p></div>`)
		assert.Contains(t, out, `dir="rtl"`)
		assert.Contains(t, out, `class="signature-block"`)
		assert.Contains(t, out, "text-align: center")
	})

	t.Run("Unwraps full documents in fences", func(t *testing.T) {
		raw := "```html\n<!DOCTYPE html><html><head><title>x</title></head><body><h2>وكالة</h2></body></html>\n```"
		assert.Equal(t, "<h2>وكالة</h2>", SanitizeDocumentHTML(raw))
	})

	t.Run("Keeps tables", func(t *testing.T) {
		out := SanitizeDocumentHTML(`<table><tr><td>الأتعاب</td><td>5000</td></tr></table>`)
		assert.Contains(t, out, "<td>الأتعاب</td>")
	})
}
