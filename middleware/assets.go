package middleware

import (
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Static assets referenced by the layout, relative to the static directory
var versionedAssets = []string{
	"css/app.css",
	"js/app.js",
	"images/favicon.svg",
}

var (
	assetVersions   = map[string]string{}
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	versions := make(map[string]string, len(versionedAssets))
	for _, asset := range versionedAssets {
		version := computeFileHash(filepath.Join(staticDir, filepath.FromSlash(asset)))
		if version == "" {
			version = "1"
		}
		versions[asset] = version
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()
	log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
}

// computeFileHash returns the first 8 hex characters of the BLAKE2b hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash, _ := blake2b.New256(nil)
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the version hash of a static asset, "1" when unknown
func AssetVersion(asset string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if v, ok := assetVersions[asset]; ok {
		return v
	}
	return "1"
}

// AssetURL returns the cache-busted URL of a static asset
func AssetURL(asset string) string {
	return "/static/" + asset + "?v=" + AssetVersion(asset)
}
