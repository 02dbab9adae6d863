package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"freevector_app_go/models"
	"freevector_app_go/services/catalog"
	"html/template"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/xuri/excelize/v2"
)

// Export file names, also the last segment of their storage keys
const (
	ExportXLSX       = "icons.xlsx"
	ExportCSV        = "icons.csv"
	ExportZIP        = "icons.zip"
	ExportCheatSheet = "cheatsheet.pdf"
)

// ExportFiles lists every export in the order the CLI writes them
var ExportFiles = []string{ExportXLSX, ExportCSV, ExportZIP, ExportCheatSheet}

// ErrUnknownExport is returned for a file name outside ExportFiles
var ErrUnknownExport = errors.New("unknown export")

var exportHeaders = []string{"ID", "Name", "Display Name", "Category", "Tags", "Popular"}

func exportRow(r models.IconRecord) []string {
	popular := "no"
	if r.Popular {
		popular = "yes"
	}
	return []string{r.ID, r.Name, r.DisplayName, string(r.Category), strings.Join(r.Tags, ", "), popular}
}

// BuildCatalogCSV writes the catalog as CSV with a header row
func BuildCatalogCSV(store *catalog.Store) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, r := range store.AllIcons() {
		if err := w.Write(exportRow(r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildCatalogXLSX writes the catalog workbook: an "Icons" sheet with one row
// per record and a "Categories" sheet with per-category counts.
func BuildCatalogXLSX(store *catalog.Store) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const iconsSheet = "Icons"
	const categoriesSheet = "Categories"

	if err := f.SetSheetName("Sheet1", iconsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4F46E5"}, Pattern: 1},
	})

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(iconsSheet, cell, header)
	}
	f.SetCellStyle(iconsSheet, "A1", "F1", headerStyle)

	for row, r := range store.AllIcons() {
		values := exportRow(r)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(iconsSheet, cell, v)
		}
	}
	f.SetColWidth(iconsSheet, "A", "C", 18)
	f.SetColWidth(iconsSheet, "D", "D", 20)
	f.SetColWidth(iconsSheet, "E", "E", 40)
	f.SetPanes(iconsSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	if _, err := f.NewSheet(categoriesSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetCellValue(categoriesSheet, "A1", "Category")
	f.SetCellValue(categoriesSheet, "B1", "Icons")
	f.SetCellStyle(categoriesSheet, "A1", "B1", headerStyle)
	for i, c := range store.CategoryCounts() {
		f.SetCellValue(categoriesSheet, fmt.Sprintf("A%d", i+2), string(c.Category))
		f.SetCellValue(categoriesSheet, fmt.Sprintf("B%d", i+2), c.Count)
	}
	f.SetColWidth(categoriesSheet, "A", "A", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// CatalogManifest is the manifest.json of the zip bundle
type CatalogManifest struct {
	Name        string                 `json:"name"`
	Fingerprint string                 `json:"fingerprint"`
	Total       int                    `json:"total"`
	Categories  []models.CategoryCount `json:"categories"`
	Icons       []models.IconRecord    `json:"icons"`
}

// BuildCatalogManifest encodes the whole catalog as indented JSON
func BuildCatalogManifest(store *catalog.Store) ([]byte, error) {
	manifest := CatalogManifest{
		Name:        "FreeVectorIcons",
		Fingerprint: store.Fingerprint(),
		Total:       store.Len(),
		Categories:  store.CategoryCounts(),
		Icons:       store.AllIcons(),
	}
	return json.MarshalIndent(manifest, "", "  ")
}

const bundleReadme = `FreeVectorIcons catalog bundle
==============================

Catalog version: %s
Icons: %d

manifest.json  every icon record and category count
icons.csv      one row per icon
icons.xlsx     the same data as a workbook

Glyphs are drawn with Lucide (https://lucide.dev), ISC license.
`

// BuildCatalogZIP bundles the manifest, CSV, workbook and a README
func BuildCatalogZIP(store *catalog.Store) ([]byte, error) {
	manifest, err := BuildCatalogManifest(store)
	if err != nil {
		return nil, fmt.Errorf("failed to build manifest: %w", err)
	}
	csvData, err := BuildCatalogCSV(store)
	if err != nil {
		return nil, err
	}
	xlsxData, err := BuildCatalogXLSX(store)
	if err != nil {
		return nil, err
	}

	entries := []struct {
		name string
		data []byte
	}{
		{"manifest.json", manifest},
		{ExportCSV, csvData},
		{ExportXLSX, xlsxData},
		{"README.txt", []byte(fmt.Sprintf(bundleReadme, store.Fingerprint(), store.Len()))},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	modified := time.Now().UTC()
	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish zip: %w", err)
	}
	return buf.Bytes(), nil
}

var cheatSheetTemplate = template.Must(template.New("cheatsheet").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>FreeVectorIcons cheat sheet</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; color: #111827; font-size: 10px; }
h1 { font-size: 20px; margin: 0 0 4px; }
h2 { font-size: 13px; margin: 16px 0 6px; color: #4f46e5; page-break-after: avoid; }
.meta { color: #6b7280; margin-bottom: 12px; }
table { width: 100%; border-collapse: collapse; page-break-inside: auto; }
th, td { text-align: left; padding: 3px 6px; border-bottom: 1px solid #e5e7eb; }
th { background: #f3f4f6; }
code { font-family: Menlo, Consolas, monospace; }
.popular { color: #d97706; }
</style>
</head>
<body>
<h1>FreeVectorIcons cheat sheet</h1>
<div class="meta">{{.Total}} icons &middot; catalog {{.Fingerprint}}</div>
{{range .Groups}}
<h2>{{.Category}} ({{len .Icons}})</h2>
<table>
<thead><tr><th>Icon</th><th>ID</th><th>Glyph</th><th>Tags</th></tr></thead>
<tbody>
{{range .Icons}}<tr><td>{{.DisplayName}}{{if .Popular}} <span class="popular">&#9733;</span>{{end}}</td><td><code>{{.ID}}</code></td><td><code>{{.Glyph}}</code></td><td>{{.Tags}}</td></tr>
{{end}}</tbody>
</table>
{{end}}
</body>
</html>
`))

type cheatSheetIcon struct {
	ID          string
	DisplayName string
	Glyph       string
	Tags        string
	Popular     bool
}

type cheatSheetGroup struct {
	Category models.IconCategory
	Icons    []cheatSheetIcon
}

// RenderCheatSheetHTML renders the printable catalog, one table per category
func RenderCheatSheetHTML(store *catalog.Store) (string, error) {
	var groups []cheatSheetGroup
	for _, c := range store.Categories() {
		if c == models.CategoryAll {
			continue
		}
		records, err := store.ByCategory(c)
		if err != nil {
			return "", err
		}
		if len(records) == 0 {
			continue
		}
		group := cheatSheetGroup{Category: c}
		for _, r := range records {
			group.Icons = append(group.Icons, cheatSheetIcon{
				ID:          r.ID,
				DisplayName: r.DisplayName,
				Glyph:       store.GlyphNameOrDefault(r.ID),
				Tags:        strings.Join(r.Tags, ", "),
				Popular:     r.Popular,
			})
		}
		groups = append(groups, group)
	}

	var buf bytes.Buffer
	err := cheatSheetTemplate.Execute(&buf, map[string]interface{}{
		"Total":       store.Len(),
		"Fingerprint": store.Fingerprint(),
		"Groups":      groups,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render cheat sheet: %w", err)
	}
	return buf.String(), nil
}

// Exporter builds catalog exports and caches them in storage under the
// catalog fingerprint, so a catalog change never serves a stale file.
type Exporter struct {
	Store      *catalog.Store
	Storage    StorageProvider
	ChromePath string

	mu sync.Mutex
}

// NewExporter creates an exporter over store, caching in storage (nil disables caching)
func NewExporter(store *catalog.Store, storage StorageProvider, chromePath string) *Exporter {
	return &Exporter{Store: store, Storage: storage, ChromePath: chromePath}
}

// Build generates an export without touching the cache
func (e *Exporter) Build(ctx context.Context, name string) ([]byte, error) {
	switch name {
	case ExportXLSX:
		return BuildCatalogXLSX(e.Store)
	case ExportCSV:
		return BuildCatalogCSV(e.Store)
	case ExportZIP:
		return BuildCatalogZIP(e.Store)
	case ExportCheatSheet:
		html, err := RenderCheatSheetHTML(e.Store)
		if err != nil {
			return nil, err
		}
		return GeneratePDF(ctx, e.ChromePath, html, DefaultPDFOptions())
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExport, name)
}

// Key returns the storage key of an export for the current catalog
func (e *Exporter) Key(name string) string {
	return ExportKey(e.Store.Fingerprint(), name)
}

// Open returns a reader over an export, serving the cached object when it
// exists and generating and caching it otherwise.
func (e *Exporter) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if !isExportFile(name) {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownExport, name)
	}
	contentType := ContentTypeFor(name)
	if e.Storage == nil {
		data, err := e.Build(ctx, name)
		if err != nil {
			return nil, "", err
		}
		return io.NopCloser(bytes.NewReader(data)), contentType, nil
	}

	key := e.Key(name)
	if rc, _, err := e.Storage.Get(ctx, key); err == nil {
		return rc, contentType, nil
	} else if !errors.Is(err, ErrObjectNotFound) {
		log.Printf("[WARNING] Export cache read failed for %s: %v", key, err)
	}

	// One build at a time; a concurrent request may have filled the cache meanwhile
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc, _, err := e.Storage.Get(ctx, key); err == nil {
		return rc, contentType, nil
	}

	start := time.Now()
	data, err := e.Build(ctx, name)
	if err != nil {
		return nil, "", err
	}
	log.Printf("[EXPORT] Built %s (%d bytes) in %v", key, len(data), time.Since(start))

	if _, err := e.Storage.UploadReader(ctx, bytes.NewReader(data), key, contentType, int64(len(data))); err != nil {
		log.Printf("[WARNING] Failed to cache export %s in %s: %v", key, e.Storage.Name(), err)
	}
	return io.NopCloser(bytes.NewReader(data)), contentType, nil
}

func isExportFile(name string) bool {
	for _, f := range ExportFiles {
		if f == name {
			return true
		}
	}
	return false
}

// Warm fills the cache for the named exports. Failures are logged and the
// remaining exports are still built.
func (e *Exporter) Warm(ctx context.Context, names ...string) int {
	built := 0
	for _, name := range names {
		if ctx.Err() != nil {
			break
		}
		rc, _, err := e.Open(ctx, name)
		if err != nil {
			log.Printf("[WARNING] Failed to warm export %s: %v", name, err)
			continue
		}
		rc.Close()
		built++
	}
	return built
}
