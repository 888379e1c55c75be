package qrtoken

import (
	"encoding/hex"
	"testing"
)

func TestGenerateProducesHexDigest(t *testing.T) {
	token, err := Generate("52998224725")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if len(token) != 64 {
		t.Errorf("token length = %d, want 64", len(token))
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Errorf("token is not valid hex: %v", err)
	}
}

func TestGenerateIsSalted(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := Generate("52998224725")
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated for the same national ID: %s", token)
		}
		seen[token] = true
	}
}
