// Package qrtoken derives the opaque tokens encoded into registrant QR codes.
package qrtoken

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const saltBytes = 16

// Generate derives an opaque token for the given national ID. A fresh
// random salt goes into every call, so re-generating for the same ID
// yields a different token; uniqueness is still enforced by the storage
// layer and callers retry on a constraint violation.
func Generate(nationalID string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate token salt: %w", err)
	}

	digest := sha256.Sum256([]byte(nationalID + "-" + hex.EncodeToString(salt)))
	return hex.EncodeToString(digest[:]), nil
}
