package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data as a 64-character hex
// string.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ArtifactKey builds a cache key for a rendered artifact from the diagram
// markup and the output format. The markup is hashed, so keys stay
// bounded and filesystem-safe regardless of diagram size or content.
func ArtifactKey(markup []byte, format string) string {
	return "artifact:" + format + ":" + Hash(markup)
}
