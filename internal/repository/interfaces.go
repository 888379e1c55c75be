package repository

import (
	"context"
	"time"

	"promo-api/internal/domain"
)

// RegistrantRepository defines the interface for registrant data operations
type RegistrantRepository interface {
	// Create persists a new registrant and fills in ID and CreatedAt
	Create(ctx context.Context, registrant *domain.Registrant) error

	// GetByNationalIDOrPhone retrieves a registrant matching either key.
	// Returns (nil, nil) when no registrant matches.
	GetByNationalIDOrPhone(ctx context.Context, nationalID, phone string) (*domain.Registrant, error)

	// GetByToken retrieves a registrant by QR token. Returns (nil, nil)
	// when the token is unknown.
	GetByToken(ctx context.Context, token string) (*domain.Registrant, error)

	// Redeem marks the registrant with the given token as used, only if
	// it is not used yet. Returns (nil, nil) when no unused registrant
	// holds the token.
	Redeem(ctx context.Context, token string, usedAt time.Time) (*domain.Registrant, error)

	// List retrieves a page of registrants, optionally filtered by a
	// case-insensitive search over name and CPF
	List(ctx context.Context, offset, limit int, search string) ([]domain.Registrant, error)

	// Count returns the total number of registrants
	Count(ctx context.Context) (int, error)

	// ResetAllUsage clears used/used_at on every registrant and returns
	// the number of rows touched
	ResetAllUsage(ctx context.Context) (int64, error)
}

// CampaignConfigRepository defines the interface for the configuration row
type CampaignConfigRepository interface {
	// Get retrieves the configuration row. Returns (nil, nil) when no
	// row exists yet.
	Get(ctx context.Context) (*domain.CampaignConfig, error)

	// Create persists a new configuration row
	Create(ctx context.Context, config *domain.CampaignConfig) error

	// Update persists changes to an existing configuration row
	Update(ctx context.Context, config *domain.CampaignConfig) error
}
