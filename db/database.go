package db

import (
	"context"
	"fmt"
	"log"
	"strings"

	"freevector_app_go/config"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

var DB *gorm.DB

// Initialize opens the database selected by the configuration: a remote
// libSQL (Turso) database when TURSO_DATABASE_URL is set, otherwise a local
// SQLite file in WAL mode through the configured driver.
func Initialize(cfg *config.Config) error {
	var err error

	// Determine log level based on environment
	logLevel := logger.Info
	if cfg.IsProduction() {
		logLevel = logger.Warn
	}

	DB, err = gorm.Open(Dialector(cfg), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.TursoDatabaseURL != "" {
		log.Println("Database connection established (Turso libSQL)")
	} else {
		log.Printf("Database connection established (driver %s, WAL mode enabled)", cfg.SQLiteDriver)
	}
	return nil
}

// Dialector builds the gorm dialector for the configured backend
func Dialector(cfg *config.Config) gorm.Dialector {
	if cfg.TursoDatabaseURL != "" {
		return sqlite.New(sqlite.Config{
			DriverName: "libsql",
			DSN:        TursoDSN(cfg.TursoDatabaseURL, cfg.TursoAuthToken),
		})
	}

	switch cfg.SQLiteDriver {
	case config.DriverModernc:
		// modernc takes pragmas as _pragma query parameters
		return sqlite.New(sqlite.Config{
			DriverName: config.DriverModernc,
			DSN:        cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)",
		})
	default:
		return sqlite.Open(cfg.DBPath + "?_journal_mode=WAL&_busy_timeout=5000")
	}
}

// TursoDSN appends the auth token to a libSQL URL
func TursoDSN(url, token string) string {
	if token == "" {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "authToken=" + token
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}

// Ping checks the connection is alive
func Ping(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
