package catalog

import (
	"encoding/hex"
	"encoding/json"

	"freevector_app_go/models"

	"golang.org/x/crypto/blake2b"
)

// computeFingerprint hashes the serialized catalog. JSON encoding of a slice
// of structs is deterministic, so equal catalogs share a fingerprint.
func computeFingerprint(records []models.IconRecord) string {
	data, err := json.Marshal(records)
	if err != nil {
		return "0"
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// QueryETag derives a strong ETag for a catalog query response
func (s *Store) QueryETag(parts ...string) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(s.fingerprint))
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return `"` + hex.EncodeToString(h.Sum(nil)[:12]) + `"`
}
