package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// SQLite drivers selectable with SQLITE_DRIVER
const (
	DriverMattn   = "sqlite3" // cgo, gorm.io/driver/sqlite default
	DriverModernc = "sqlite"  // pure Go, modernc.org/sqlite
)

type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	AppURL      string `env:"APP_URL" envDefault:"http://localhost:8080"`

	// Database
	DBPath           string `env:"DB_PATH" envDefault:"db/app.db"`
	SQLiteDriver     string `env:"SQLITE_DRIVER" envDefault:"sqlite3"`
	TursoDatabaseURL string `env:"TURSO_DATABASE_URL"`
	TursoAuthToken   string `env:"TURSO_AUTH_TOKEN"`

	// Email (Resend)
	ResendAPIKey  string `env:"RESEND_API_KEY"`
	EmailFrom     string `env:"EMAIL_FROM" envDefault:"noreply@freevectoricons.dev"`
	EmailFromName string `env:"EMAIL_FROM_NAME" envDefault:"FreeVectorIcons"`
	EmailTestMode bool   `env:"EMAIL_TEST_MODE" envDefault:"true"` // When true, emails are logged to console instead of sent
	SalesInbox    string `env:"SALES_INBOX" envDefault:"sales@freevectoricons.dev"`

	// Cloudflare Turnstile
	TurnstileSiteKey   string `env:"TURNSTILE_SITE_KEY"`
	TurnstileSecretKey string `env:"TURNSTILE_SECRET_KEY"`

	// Cloudflare R2 Storage (catalog exports)
	R2AccountID       string `env:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	R2BucketName      string `env:"R2_BUCKET_NAME"`
	R2PublicURL       string `env:"R2_PUBLIC_URL"`
	ExportDir         string `env:"EXPORT_DIR" envDefault:"static/exports"`

	// Headless Chrome for the PDF cheat sheet
	ChromePath string `env:"CHROME_PATH"`

	// OpenTelemetry
	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`

	// Other
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads .env (if present) and the environment into a Config
func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		log.Fatalf("[CRITICAL] %v", err)
	}

	if err := cfg.Validate(); err != nil {
		if cfg.IsProduction() {
			log.Fatalf("[CRITICAL] Invalid configuration: %v", err)
		}
		log.Printf("[WARNING] Invalid configuration: %v", err)
	}

	return cfg
}

// Parse reads the process environment without touching .env files
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
	}
	cfg.AppURL = strings.TrimRight(cfg.AppURL, "/")
	return cfg, nil
}

// Validate checks settings that would otherwise fail at first use
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		return fmt.Errorf("unknown ENVIRONMENT %q", c.Environment)
	}

	switch c.SQLiteDriver {
	case DriverMattn, DriverModernc:
	default:
		return fmt.Errorf("unsupported SQLITE_DRIVER %q (use %q or %q)", c.SQLiteDriver, DriverMattn, DriverModernc)
	}

	if c.IsProduction() {
		if !strings.HasPrefix(c.AppURL, "https://") {
			return fmt.Errorf("APP_URL must use https in production (got %q)", c.AppURL)
		}
		if c.TurnstileSiteKey != "" && c.TurnstileSecretKey == "" {
			return fmt.Errorf("TURNSTILE_SECRET_KEY is required when TURNSTILE_SITE_KEY is set")
		}
		if !c.EmailTestMode && c.ResendAPIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required when EMAIL_TEST_MODE is off")
		}
	}

	return nil
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// TurnstileEnabled reports whether the contact form must pass a Turnstile check
func (c *Config) TurnstileEnabled() bool {
	return c.TurnstileSiteKey != "" && c.TurnstileSecretKey != ""
}

// R2Configured reports whether every R2 credential is present
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}
