package jobs

import (
	"context"
	"freevector_app_go/services"
	"log"
	"time"
)

// CachedExports are built ahead of the first download. The PDF needs Chrome
// and stays on demand.
var CachedExports = []string{services.ExportXLSX, services.ExportCSV, services.ExportZIP}

// WarmExports fills the export cache for the current catalog
func WarmExports(ctx context.Context, exporter *services.Exporter) int {
	start := time.Now()
	built := exporter.Warm(ctx, CachedExports...)
	log.Printf("[JOB] Warmed %d/%d exports in %v", built, len(CachedExports), time.Since(start))
	return built
}
