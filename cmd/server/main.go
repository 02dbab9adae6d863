package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freevector_app_go/config"
	"freevector_app_go/db"
	"freevector_app_go/handlers"
	"freevector_app_go/middleware"
	"freevector_app_go/models"
	"freevector_app_go/services"
	"freevector_app_go/services/catalog"
	"freevector_app_go/services/i18n"
	"freevector_app_go/services/jobs"
	"freevector_app_go/services/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	// Tracing (no-op without an OTLP endpoint)
	shutdownTracing, err := telemetry.Setup(ctx, cfg, "freevector-app")
	if err != nil {
		log.Printf("[WARNING] Failed to initialize tracing: %v", err)
	}

	// Initialize database
	if err := db.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Plan{}, &models.ContactRequest{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := services.SeedDefaultPlans(db.DB); err != nil {
		log.Printf("[WARNING] Failed to seed plans: %v", err)
	}

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	// The catalog is built and validated before any request can read it
	store := catalog.Default()
	log.Printf("[INFO] Icon catalog loaded (%d icons, fingerprint %s)", store.Len(), store.Fingerprint())

	services.InitializeStorage(cfg)
	if err := handlers.Init(cfg, store); err != nil {
		log.Fatalf("Failed to initialize handlers: %v", err)
	}
	middleware.InitAssetVersions("static")

	server, err := handlers.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}
	httpServer := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           server.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Background jobs; exports are also warmed once right away
	scheduler, err := jobs.StartScheduler(ctx, db.DB, cfg, handlers.Exports)
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	go jobs.WarmExports(ctx, handlers.Exports)

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARNING] Server shutdown: %v", err)
	}
	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("[WARNING] Tracing shutdown: %v", err)
		}
	}
}
