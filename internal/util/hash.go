package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex is the cache key for image payloads (see store.OcrRepo).
func SHA256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}
