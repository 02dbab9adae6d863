package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"freevector_app_go/models"
	"freevector_app_go/services/catalog"
	"io"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	return catalog.MustNewStore([]models.IconRecord{
		{ID: "home", Name: "Home", DisplayName: "Home", Category: models.CategoryUIControls, Tags: []string{"house", "main"}, Popular: true},
		{ID: "mail", Name: "Mail", DisplayName: "Mail", Category: models.CategoryCommunication, Tags: []string{"email", "letter"}},
		{ID: "sun", Name: "Sun", DisplayName: "Sun", Category: models.CategoryWeather, Tags: []string{"sunny", "day"}},
	})
}

func TestBuildCatalogCSV(t *testing.T) {
	data, err := BuildCatalogCSV(exportTestStore(t))
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, []string{"home", "Home", "Home", "UI & Controls", "house, main", "yes"}, rows[1])
	assert.Equal(t, "no", rows[2][5])
}

func TestBuildCatalogXLSX(t *testing.T) {
	data, err := BuildCatalogXLSX(exportTestStore(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Icons", "Categories"}, f.GetSheetList())

	rows, err := f.GetRows("Icons")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Display Name", rows[0][2])
	assert.Equal(t, "mail", rows[2][0])

	cats, err := f.GetRows("Categories")
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "3"}, cats[1])
	assert.Len(t, cats, len(models.IconCategories)+1)
}

func TestBuildCatalogZIP(t *testing.T) {
	store := exportTestStore(t)
	data, err := BuildCatalogZIP(store)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"manifest.json", "icons.csv", "icons.xlsx", "README.txt"}, names)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	var manifest CatalogManifest
	require.NoError(t, json.NewDecoder(rc).Decode(&manifest))
	assert.Equal(t, 3, manifest.Total)
	assert.Equal(t, store.Fingerprint(), manifest.Fingerprint)
	assert.Len(t, manifest.Icons, 3)
	assert.Equal(t, "home", manifest.Icons[0].ID)
}

func TestRenderCheatSheetHTML(t *testing.T) {
	html, err := RenderCheatSheetHTML(exportTestStore(t))
	require.NoError(t, err)

	assert.Contains(t, html, "UI &amp; Controls (1)")
	assert.Contains(t, html, "<code>house</code>") // glyph override for home
	assert.Contains(t, html, "Weather (1)")
	// Empty categories are skipped
	assert.NotContains(t, html, "Gaming")
}

// countingStorage wraps LocalStorage and counts uploads
type countingStorage struct {
	*LocalStorage
	uploads int
}

func (c *countingStorage) UploadReader(ctx context.Context, r io.Reader, key, contentType string, size int64) (*StorageResult, error) {
	c.uploads++
	return c.LocalStorage.UploadReader(ctx, r, key, contentType, size)
}

func TestExporterOpen(t *testing.T) {
	store := exportTestStore(t)
	storage := &countingStorage{LocalStorage: NewLocalStorage(t.TempDir())}
	exporter := NewExporter(store, storage, "")
	ctx := context.Background()

	t.Run("Builds and caches on first request", func(t *testing.T) {
		rc, contentType, err := exporter.Open(ctx, ExportCSV)
		require.NoError(t, err)
		defer rc.Close()

		data, _ := io.ReadAll(rc)
		assert.Contains(t, string(data), "home,Home,Home")
		assert.Equal(t, "text/csv; charset=utf-8", contentType)
		assert.Equal(t, 1, storage.uploads)

		exists, err := storage.Exists(ctx, ExportKey(store.Fingerprint(), ExportCSV))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Serves cached object", func(t *testing.T) {
		rc, _, err := exporter.Open(ctx, ExportCSV)
		require.NoError(t, err)
		rc.Close()
		assert.Equal(t, 1, storage.uploads)
	})

	t.Run("Unknown export", func(t *testing.T) {
		_, _, err := exporter.Open(ctx, "icons.exe")
		assert.ErrorIs(t, err, ErrUnknownExport)
	})

	t.Run("Cheat sheet without chrome", func(t *testing.T) {
		noChrome := NewExporter(store, storage, "/nonexistent/chrome")
		_, _, err := noChrome.Open(ctx, ExportCheatSheet)
		assert.ErrorIs(t, err, ErrChromeUnavailable)
	})

	t.Run("No storage builds every time", func(t *testing.T) {
		direct := NewExporter(store, nil, "")
		rc, contentType, err := direct.Open(ctx, ExportXLSX)
		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, ContentTypeFor(ExportXLSX), contentType)
	})

	t.Run("Key follows fingerprint", func(t *testing.T) {
		assert.Equal(t, "exports/"+store.Fingerprint()+"/icons.zip", exporter.Key(ExportZIP))
	})
}

func TestExporterWarm(t *testing.T) {
	store := exportTestStore(t)
	storage := &countingStorage{LocalStorage: NewLocalStorage(t.TempDir())}
	exporter := NewExporter(store, storage, "")
	ctx := context.Background()

	built := exporter.Warm(ctx, ExportCSV, ExportXLSX, "icons.exe")
	assert.Equal(t, 2, built)
	assert.Equal(t, 2, storage.uploads)

	// Already cached
	assert.Equal(t, 2, exporter.Warm(ctx, ExportCSV, ExportXLSX))
	assert.Equal(t, 2, storage.uploads)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Equal(t, 0, exporter.Warm(cancelled, ExportZIP))
}
