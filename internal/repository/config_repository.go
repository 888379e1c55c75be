package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"promo-api/internal/domain"
	"promo-api/pkg/database"
)

type PostgresCampaignConfigRepository struct {
	db *database.PostgresDB
}

func NewCampaignConfigRepository(db *database.PostgresDB) *PostgresCampaignConfigRepository {
	return &PostgresCampaignConfigRepository{db: db}
}

// Get retrieves the single configuration row
func (r *PostgresCampaignConfigRepository) Get(ctx context.Context) (*domain.CampaignConfig, error) {
	query := `
		SELECT id, title, registrant_cap, admin_password_hash, enrollment_deadline, last_updated_at
		FROM campaign_config
		ORDER BY last_updated_at DESC
		LIMIT 1
	`

	var config domain.CampaignConfig
	err := r.db.Pool.QueryRow(ctx, query).Scan(
		&config.ID,
		&config.Title,
		&config.RegistrantCap,
		&config.AdminPasswordHash,
		&config.EnrollmentDeadline,
		&config.LastUpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("failed to get campaign config", err)
	}

	return &config, nil
}

// Create persists a new configuration row
func (r *PostgresCampaignConfigRepository) Create(ctx context.Context, config *domain.CampaignConfig) error {
	query := `
		INSERT INTO campaign_config (id, title, registrant_cap, admin_password_hash, enrollment_deadline, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		config.ID,
		config.Title,
		config.RegistrantCap,
		config.AdminPasswordHash,
		config.EnrollmentDeadline,
		config.LastUpdatedAt,
	)
	if err != nil {
		return wrapErr("failed to create campaign config", err)
	}

	return nil
}

// Update persists changes to the configuration row
func (r *PostgresCampaignConfigRepository) Update(ctx context.Context, config *domain.CampaignConfig) error {
	query := `
		UPDATE campaign_config
		SET title = $2, registrant_cap = $3, admin_password_hash = $4,
		    enrollment_deadline = $5, last_updated_at = $6
		WHERE id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query,
		config.ID,
		config.Title,
		config.RegistrantCap,
		config.AdminPasswordHash,
		config.EnrollmentDeadline,
		config.LastUpdatedAt,
	)
	if err != nil {
		return wrapErr("failed to update campaign config", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConfigMissing
	}

	return nil
}
