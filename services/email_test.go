package services

import (
	"freevector_app_go/config"
	"freevector_app_go/services/i18n"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// useTemplateDir points the email loader at dir for the duration of a test
func useTemplateDir(t *testing.T, dir string) {
	t.Helper()
	old := emailTemplateDir
	emailTemplateDir = dir
	t.Cleanup(func() { emailTemplateDir = old })
}

func TestLoadTemplate(t *testing.T) {
	tmpTemplatesDir := t.TempDir()
	useTemplateDir(t, tmpTemplatesDir)

	// Create a base English template
	baseHTML := "<html><body>Hello {{.Name}}</body></html>"
	baseText := "Hello {{.Name}}"
	os.WriteFile(filepath.Join(tmpTemplatesDir, "test_template.html"), []byte(baseHTML), 0644)
	os.WriteFile(filepath.Join(tmpTemplatesDir, "test_template.txt"), []byte(baseText), 0644)

	// Create a localized Spanish template
	esHTML := "<html><body>Hola {{.Name}}</body></html>"
	esText := "Hola {{.Name}}"
	os.WriteFile(filepath.Join(tmpTemplatesDir, "test_template_es.html"), []byte(esHTML), 0644)
	os.WriteFile(filepath.Join(tmpTemplatesDir, "test_template_es.txt"), []byte(esText), 0644)

	type data struct {
		Name string
	}
	tplData := data{Name: "John"}

	t.Run("Load Base Template", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "en", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hello John")
		assert.Contains(t, text, "Hello John")
	})

	t.Run("Load Localized Template", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "es", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hola John")
		assert.Contains(t, text, "Hola John")
	})

	t.Run("Fallback to Base when Localized Missing", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "fr", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hello John")
		assert.Contains(t, text, "Hello John")
	})

	t.Run("Template Not Found", func(t *testing.T) {
		_, _, err := loadTemplate("non_existent", "en", tplData)
		assert.Error(t, err)
	})

	t.Run("HTML is escaped", func(t *testing.T) {
		html, _, err := loadTemplate("test_template", "en", data{Name: "<script>"})
		assert.NoError(t, err)
		assert.NotContains(t, html, "<script>")
	})
}

func TestBuildEmailWithFallback(t *testing.T) {
	tmpTemplatesDir := t.TempDir()
	useTemplateDir(t, tmpTemplatesDir)

	os.WriteFile(filepath.Join(tmpTemplatesDir, "test_build.html"), []byte("HTML {{.Val}}"), 0644)
	os.WriteFile(filepath.Join(tmpTemplatesDir, "test_build.txt"), []byte("Text {{.Val}}"), 0644)

	email := buildEmailWithFallback("test_build", "en", map[string]string{"Val": "OK"}, "test@example.com")
	assert.Equal(t, []string{"test@example.com"}, email.To)
	assert.Equal(t, "HTML OK", email.HTMLBody)
	assert.Equal(t, "Text OK", email.TextBody)
}

func TestBuildSalesNotificationEmail(t *testing.T) {
	i18n.MustLoad()
	data := SalesNotificationEmailData{
		RequestID: "req-1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Company:   "Acme",
		TeamSize:  "6-20",
		PlanTier:  "enterprise",
		Message:   "We need custom icons",
	}

	t.Run("Uses shipped templates", func(t *testing.T) {
		useTemplateDir(t, filepath.Join("..", "templates", "emails"))
		email := BuildSalesNotificationEmail("sales@example.com", data, "en")
		assert.Equal(t, []string{"sales@example.com"}, email.To)
		assert.Equal(t, "ada@example.com", email.ReplyTo)
		assert.Equal(t, "New contact request from Ada", email.Subject)
		assert.Contains(t, email.HTMLBody, "Acme")
		assert.Contains(t, email.TextBody, "We need custom icons")
	})

	t.Run("Plain text fallback without templates", func(t *testing.T) {
		useTemplateDir(t, t.TempDir())
		email := BuildSalesNotificationEmail("sales@example.com", data, "es")
		assert.Empty(t, email.HTMLBody)
		assert.Contains(t, email.TextBody, "req-1")
		assert.Equal(t, "Nueva solicitud de contacto de Ada", email.Subject)
	})
}

func TestBuildContactAcknowledgementEmail(t *testing.T) {
	i18n.MustLoad()
	useTemplateDir(t, filepath.Join("..", "templates", "emails"))
	data := ContactAcknowledgementEmailData{Name: "Lucía", Message: "Hola", AppURL: "https://icons.example.com"}

	email := BuildContactAcknowledgementEmail("lucia@example.com", data, "es")
	assert.Equal(t, "Recibimos tu mensaje", email.Subject)
	assert.Contains(t, email.TextBody, "Hola Lucía")
	assert.Contains(t, email.HTMLBody, "https://icons.example.com")

	email = BuildContactAcknowledgementEmail("lucia@example.com", data, "en")
	assert.Contains(t, email.TextBody, "Hi Lucía")
}

func TestSendEmail_TestMode(t *testing.T) {
	cfg := &config.Config{
		EmailTestMode: true,
	}
	email := &Email{
		To:       []string{"test@example.com"},
		Subject:  "Test",
		HTMLBody: "Body",
	}

	err := SendEmail(cfg, email)
	assert.NoError(t, err)
}

func TestSendEmail_NoApiKey(t *testing.T) {
	cfg := &config.Config{
		EmailTestMode: false,
		ResendAPIKey:  "",
	}
	email := &Email{
		To:       []string{"test@example.com"},
		Subject:  "Test",
		HTMLBody: "Body",
	}

	err := SendEmail(cfg, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY not configured")
}

func TestSendEmail_NoBody(t *testing.T) {
	cfg := &config.Config{
		EmailTestMode: false,
		ResendAPIKey:  "key",
	}
	email := &Email{
		To:      []string{"test@example.com"},
		Subject: "Test",
	}

	err := SendEmail(cfg, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must have either HTMLBody or TextBody")
}

func TestTruncate(t *testing.T) {
	s := "Hello World"
	assert.Equal(t, "Hello", truncate(s, 5))
	assert.Equal(t, "Hello World", truncate(s, 20))
}
