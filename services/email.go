package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/mail"
	"strings"

	"legal_wizard_go/config"
	"legal_wizard_go/models"
	"legal_wizard_go/services/i18n"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// ErrInvalidEmailAddress is returned for a recipient that does not parse
var ErrInvalidEmailAddress = fmt.Errorf("invalid email address")

// ParseRecipient validates a single recipient address and returns it bare
func ParseRecipient(address string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(address))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmailAddress, address)
	}
	return addr.Address, nil
}

var documentsEmailTemplate = template.Must(template.New("documents").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head><meta charset="UTF-8"><title>{{.Subject}}</title></head>
<body style="font-family: Arial, sans-serif; direction: {{.Dir}};">
<p>{{.Intro}}</p>
{{range .Documents}}<hr>
<h2>{{.Title}}</h2>
<div dir="rtl">{{.Content}}</div>
{{end}}<hr>
<p style="color: #666; font-size: 12px;">{{.Footer}}</p>
</body>
</html>`))

type documentsEmailData struct {
	Lang      string
	Dir       string
	Subject   string
	Intro     string
	Footer    string
	Documents []documentsEmailEntry
}

type documentsEmailEntry struct {
	Title   string
	Content template.HTML
}

// BuildDocumentsEmail puts every generated document into one HTML email.
// Document HTML has already been sanitized when it was generated.
func BuildDocumentsEmail(toEmail, lang string, docs []models.GeneratedDocument) (*Email, error) {
	subject := i18n.Translate(lang, "email.subject", map[string]interface{}{"count": len(docs)})
	data := documentsEmailData{
		Lang:    lang,
		Dir:     i18n.Direction(lang),
		Subject: subject,
		Intro:   i18n.Translate(lang, "email.intro"),
		Footer:  i18n.Translate(lang, "app.footer"),
	}

	var text strings.Builder
	text.WriteString(data.Intro + "\n")
	for _, doc := range docs {
		title := i18n.Translate(lang, doc.DocType.I18nKey())
		data.Documents = append(data.Documents, documentsEmailEntry{
			Title:   title,
			Content: template.HTML(doc.HTMLContent),
		})
		text.WriteString("\n- " + title)
	}

	var buf bytes.Buffer
	if err := documentsEmailTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render documents email: %w", err)
	}

	return &Email{
		To:       []string{toEmail},
		Subject:  subject,
		HTMLBody: buf.String(),
		TextBody: text.String(),
	}, nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (test mode - not actually sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in test mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Test Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate cuts s to at most maxLen bytes without splitting a character
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	runes := 0
	for i := range s {
		if i > maxLen {
			break
		}
		runes = i
	}
	return s[:runes]
}
