package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Key generates a cache key for an analysis response: a namespace prefix
// plus the SHA-256 of the raw request body. Identical request bytes always
// map to the same key.
func Key(namespace string, body []byte) string {
	return fmt.Sprintf("%s:%s", namespace, Hash(body))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
