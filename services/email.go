package services

import (
	"bytes"
	"fmt"
	"freevector_app_go/config"
	"freevector_app_go/services/i18n"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/resend/resend-go/v2"
)

// emailTemplateDir is relative to the working directory of the server
var emailTemplateDir = "templates/emails"

// buildEmailWithFallback loads a template in lang, then in English. When both
// fail the body is left empty and the caller supplies a plain text fallback.
func buildEmailWithFallback(templateName string, lang string, tmplData interface{}, toEmail string) *Email {
	htmlBody, textBody, err := loadTemplate(templateName, lang, tmplData)
	if err != nil {
		log.Printf("Error loading %s email template for lang %s: %v", templateName, lang, err)
	}

	if htmlBody == "" && textBody == "" && lang != "en" {
		htmlBody, textBody, err = loadTemplate(templateName, "en", tmplData)
		if err != nil {
			log.Printf("Error loading default 'en' template for %s: %v", templateName, err)
		}
	}

	return &Email{
		To:       []string{toEmail},
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
}

// Email represents an email message
type Email struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// loadTemplate loads an email template from the templates/emails directory
// It attempts to load templateName + "_" + lang + ".html/.txt"
// If not found, it falls back to templateName + ".html/.txt" (which is assumed to be English/Base)
func loadTemplate(templateName string, lang string, data interface{}) (html string, text string, err error) {
	loadAndExec := func(ext string) (string, error) {
		path := filepath.Join(emailTemplateDir, fmt.Sprintf("%s_%s%s", templateName, lang, ext))
		content, err := os.ReadFile(path)
		if err != nil {
			path = filepath.Join(emailTemplateDir, templateName+ext)
			content, err = os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("failed to read template %s: %v", path, err)
			}
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return "", fmt.Errorf("failed to parse template %s: %v", path, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("failed to execute template %s: %v", path, err)
		}
		return buf.String(), nil
	}

	htmlContent, err := loadAndExec(".html")
	if err != nil {
		return "", "", err
	}

	textContent, err := loadAndExec(".txt")
	if err != nil {
		return "", "", err
	}

	return htmlContent, textContent, nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (test mode, not sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	fromAddress := fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom)

	params := &resend.SendEmailRequest{
		From:    fromAddress,
		To:      email.To,
		Subject: email.Subject,
	}
	if email.ReplyTo != "" {
		params.ReplyTo = email.ReplyTo
	}

	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (test mode, not sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	if email.ReplyTo != "" {
		log.Printf("Reply-To: %s", email.ReplyTo)
	}
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// SendEmailAsync sends an email in a goroutine so handlers don't block on Resend
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		ReplyTo:  email.ReplyTo,
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func(cfg *config.Config, email *Email) {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}(cfg, emailCopy)
}

// SalesNotificationEmailData contains data for the sales inbox notification
type SalesNotificationEmailData struct {
	RequestID string
	Name      string
	Email     string
	Company   string
	TeamSize  string
	PlanTier  string
	Locale    string
	Message   string
}

// BuildSalesNotificationEmail notifies the sales inbox of a new contact request.
// Replies go straight to the requester.
func BuildSalesNotificationEmail(salesInbox string, data SalesNotificationEmailData, lang string) *Email {
	email := buildEmailWithFallback("sales_notification", lang, data, salesInbox)
	email.Subject = i18n.Translate(lang, "email.subject.sales_notification", map[string]interface{}{"name": data.Name})
	email.ReplyTo = data.Email
	if email.HTMLBody == "" && email.TextBody == "" {
		email.TextBody = fmt.Sprintf("New contact request %s\n\nName: %s\nEmail: %s\nCompany: %s\nTeam size: %s\nPlan: %s\n\n%s\n",
			data.RequestID, data.Name, data.Email, data.Company, data.TeamSize, data.PlanTier, data.Message)
	}
	return email
}

// ContactAcknowledgementEmailData contains data for the requester's confirmation
type ContactAcknowledgementEmailData struct {
	Name    string
	Message string
	AppURL  string
}

// BuildContactAcknowledgementEmail confirms receipt of a contact request to the requester
func BuildContactAcknowledgementEmail(toEmail string, data ContactAcknowledgementEmailData, lang string) *Email {
	email := buildEmailWithFallback("contact_acknowledgement", lang, data, toEmail)
	email.Subject = i18n.Translate(lang, "email.subject.contact_acknowledgement")
	if email.HTMLBody == "" && email.TextBody == "" {
		email.TextBody = i18n.Translate(lang, "contact.success", map[string]interface{}{"name": data.Name})
	}
	return email
}
