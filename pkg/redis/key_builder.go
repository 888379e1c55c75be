package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = "staging"
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// KeyCampaignConfig returns the cache key for the campaign configuration
func (kb *KeyBuilder) KeyCampaignConfig() string {
	return kb.BuildKey(KeyCampaignConfig)
}

// KeyRegistrantCount returns the cache key for the registrant count
func (kb *KeyBuilder) KeyRegistrantCount() string {
	return kb.BuildKey(KeyRegistrantCount)
}
