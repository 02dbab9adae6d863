package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"freevector_app_go/services"
	"freevector_app_go/services/catalog"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func main() {
	outDir := flag.String("out", "exports", "directory to write the exports to")
	only := flag.String("only", "", "comma separated export names (default: all)")
	chromePath := flag.String("chrome", os.Getenv("CHROME_PATH"), "Chrome/Chromium binary used for the PDF cheat sheet")
	flag.Parse()

	names := services.ExportFiles
	if *only != "" {
		names = strings.Split(*only, ",")
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create %s: %v", *outDir, err)
	}

	store := catalog.Default()
	exporter := services.NewExporter(store, nil, *chromePath)
	log.Printf("Exporting %d icons (catalog %s) to %s", store.Len(), store.Fingerprint(), *outDir)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	failed := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		data, err := exporter.Build(ctx, name)
		if errors.Is(err, services.ErrChromeUnavailable) {
			log.Printf("[WARNING] Skipping %s: %v", name, err)
			continue
		}
		if err != nil {
			log.Printf("Failed to build %s: %v", name, err)
			failed++
			continue
		}

		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Printf("Failed to write %s: %v", path, err)
			failed++
			continue
		}
		fmt.Printf("  ✓ %s (%d bytes)\n", path, len(data))
	}

	if failed > 0 {
		log.Fatalf("%d exports failed", failed)
	}
}
