package services

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// documentPolicy is the UGC policy plus what drafted legal documents need:
// direction, alignment and a few layout classes.
var documentPolicy = newDocumentPolicy()

func newDocumentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("dir", "class").Globally()
	p.AllowStyles("text-align", "direction", "font-weight", "margin-top", "margin-bottom").Globally()
	return p
}

var (
	codeFenceRegex = regexp.MustCompile("(?s)^\\s*```[a-zA-Z]*\\s*\n?(.*?)\\s*```\\s*$")
	bodyRegex      = regexp.MustCompile(`(?is)<body[^>]*>(.*)</body>`)
)

// StripCodeFence removes a surrounding Markdown code fence, if any
func StripCodeFence(s string) string {
	if m := codeFenceRegex.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return strings.TrimSpace(s)
}

// SanitizeDocumentHTML turns model output into a safe HTML fragment: code
// fences and any html/head/body wrapper are dropped, scripts and event
// handlers are removed.
func SanitizeDocumentHTML(raw string) string {
	content := StripCodeFence(raw)
	if m := bodyRegex.FindStringSubmatch(content); m != nil {
		content = m[1]
	}
	return strings.TrimSpace(documentPolicy.Sanitize(content))
}
