package services

import (
	"context"
	"freevector_app_go/config"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	tempDir := t.TempDir()

	storage := NewLocalStorage(tempDir)
	ctx := context.Background()
	content := "id,name\nhome,Home\n"
	key := ExportKey("abc123", "icons.csv")
	size := int64(len(content))

	t.Run("Missing key", func(t *testing.T) {
		exists, err := storage.Exists(ctx, key)
		assert.NoError(t, err)
		assert.False(t, exists)

		_, _, err = storage.Get(ctx, key)
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("UploadReader creates file", func(t *testing.T) {
		result, err := storage.UploadReader(ctx, strings.NewReader(content), key, ContentTypeFor(key), size)
		require.NoError(t, err)
		assert.Equal(t, key, result.Key)
		assert.Equal(t, "icons.csv", result.FileName)
		assert.Equal(t, size, result.FileSize)

		_, err = os.Stat(filepath.Join(tempDir, "exports", "abc123", "icons.csv"))
		assert.NoError(t, err)

		exists, err := storage.Exists(ctx, key)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("No temp files left behind", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Join(tempDir, "exports", "abc123"))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Get retrieves file content", func(t *testing.T) {
		reader, contentType, err := storage.Get(ctx, key)
		require.NoError(t, err)
		defer reader.Close()

		got, _ := io.ReadAll(reader)
		assert.Equal(t, content, string(got))
		assert.Equal(t, "text/csv; charset=utf-8", contentType)
	})

	t.Run("Overwrite replaces content", func(t *testing.T) {
		_, err := storage.UploadReader(ctx, strings.NewReader("new"), key, "text/csv", 3)
		require.NoError(t, err)

		reader, _, err := storage.Get(ctx, key)
		require.NoError(t, err)
		defer reader.Close()
		got, _ := io.ReadAll(reader)
		assert.Equal(t, "new", string(got))
	})

	t.Run("Traversal stays inside base dir", func(t *testing.T) {
		_, err := storage.UploadReader(ctx, strings.NewReader("x"), "../../escape.txt", "text/plain", 1)
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(tempDir, "escape.txt"))
		assert.NoError(t, err)
	})

	t.Run("Empty key is rejected", func(t *testing.T) {
		_, err := storage.UploadReader(ctx, strings.NewReader("x"), "", "text/plain", 1)
		assert.Error(t, err)
	})

	t.Run("Delete removes file", func(t *testing.T) {
		assert.NoError(t, storage.Delete(ctx, key))
		exists, _ := storage.Exists(ctx, key)
		assert.False(t, exists)

		// Deleting twice is fine
		assert.NoError(t, storage.Delete(ctx, key))
	})

	t.Run("Public URL", func(t *testing.T) {
		local := NewLocalStorage("static/exports")
		assert.Equal(t, "/static/exports/exports/abc/icons.zip", local.GetPublicURL("exports/abc/icons.zip"))
		assert.Equal(t, "local:static/exports", local.Name())
	})
}

func TestContentTypeFor(t *testing.T) {
	tests := map[string]string{
		"a.pdf":  "application/pdf",
		"a.PNG":  "image/png",
		"a.csv":  "text/csv; charset=utf-8",
		"a.json": "application/json",
		"a.zip":  "application/zip",
		"a.xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"a.txt":  "text/plain; charset=utf-8",
		"a.bin":  "application/octet-stream",
	}
	for name, expected := range tests {
		assert.Equal(t, expected, ContentTypeFor(name), name)
	}
}

func TestExportKey(t *testing.T) {
	assert.Equal(t, "exports/0123abcd/icons.xlsx", ExportKey("0123abcd", "icons.xlsx"))
}

func TestInitializeStorageLocalFallback(t *testing.T) {
	old := Storage
	defer func() { Storage = old }()

	dir := t.TempDir()
	InitializeStorage(&config.Config{ExportDir: dir})
	require.NotNil(t, Storage)
	assert.Equal(t, "local:"+dir, Storage.Name())
}

func TestR2StoragePublicURL(t *testing.T) {
	r2, err := NewR2Storage(&config.Config{
		R2AccountID:       "account",
		R2AccessKeyID:     "key",
		R2SecretAccessKey: "secret",
		R2BucketName:      "icons",
		R2PublicURL:       "https://cdn.example.com/",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/exports/abc/icons.csv", r2.GetPublicURL("exports/abc/icons.csv"))
	assert.Equal(t, "r2:icons", r2.Name())

	r2.publicURL = ""
	assert.Empty(t, r2.GetPublicURL("exports/abc/icons.csv"))
}
