package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"promo-api/internal/domain"
	"promo-api/internal/repository"
)

const defaultDeadlineDays = 30

// CampaignService manages the single campaign configuration row and the
// administrative registrant operations.
type CampaignService struct {
	configs     repository.CampaignConfigRepository
	registrants repository.RegistrantRepository
	cache       *CacheService
	location    *time.Location
	logger      *zap.Logger
	now         func() time.Time
}

// NewCampaignService creates a new campaign service
func NewCampaignService(
	configs repository.CampaignConfigRepository,
	registrants repository.RegistrantRepository,
	cache *CacheService,
	location *time.Location,
	logger *zap.Logger,
) *CampaignService {
	return &CampaignService{
		configs:     configs,
		registrants: registrants,
		cache:       cache,
		location:    location,
		logger:      logger,
		now:         time.Now,
	}
}

// Bootstrap creates the default configuration row if none exists yet.
// Runs once at service start.
func (s *CampaignService) Bootstrap(ctx context.Context, title string, registrantCap int, adminPassword string) error {
	existing, err := s.configs.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	now := s.now().In(s.location)
	deadline := now.AddDate(0, 0, defaultDeadlineDays)

	config := &domain.CampaignConfig{
		ID:                 uuid.New(),
		Title:              title,
		RegistrantCap:      registrantCap,
		AdminPasswordHash:  string(hash),
		EnrollmentDeadline: &deadline,
		LastUpdatedAt:      now,
	}

	if err := s.configs.Create(ctx, config); err != nil {
		return err
	}

	s.logger.Info("Default campaign configuration created",
		zap.String("config_id", config.ID.String()),
		zap.Int("registrant_cap", registrantCap),
		zap.Time("enrollment_deadline", deadline))

	return nil
}

// GetConfig retrieves the campaign configuration
func (s *CampaignService) GetConfig(ctx context.Context) (*domain.CampaignConfig, error) {
	if config, ok := s.cache.GetConfig(ctx); ok {
		return config, nil
	}

	config, err := s.configs.Get(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, domain.ErrConfigMissing
	}

	s.cache.SetConfig(ctx, config)
	return config, nil
}

// UpdateConfig applies a partial configuration update. Only supplied
// fields change; a supplied password is hashed before storage.
func (s *CampaignService) UpdateConfig(ctx context.Context, req *domain.ConfigUpdateRequest) (*domain.CampaignConfig, error) {
	config, err := s.configs.Get(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, domain.ErrConfigMissing
	}

	if req.Title != nil {
		config.Title = strings.TrimSpace(*req.Title)
	}
	if req.RegistrantCap != nil {
		config.RegistrantCap = *req.RegistrantCap
	}
	if req.AdminPassword != nil && *req.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		config.AdminPasswordHash = string(hash)
	}
	if req.EnrollmentDeadline != nil {
		deadline, err := s.parseDeadline(*req.EnrollmentDeadline)
		if err != nil {
			return nil, err
		}
		config.EnrollmentDeadline = deadline
	}

	config.LastUpdatedAt = s.now().In(s.location)

	if err := s.configs.Update(ctx, config); err != nil {
		return nil, err
	}

	s.cache.InvalidateConfig(ctx)

	s.logger.Info("Campaign configuration updated",
		zap.String("config_id", config.ID.String()))

	return config, nil
}

// VerifyAdminPassword compares the supplied password against the stored
// bcrypt hash. No session or token is issued.
func (s *CampaignService) VerifyAdminPassword(ctx context.Context, password string) (bool, error) {
	config, err := s.configs.Get(ctx)
	if err != nil {
		return false, err
	}
	if config == nil {
		return false, domain.ErrConfigMissing
	}

	err = bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(password))
	return err == nil, nil
}

// ListRegistrants retrieves a page of registrants for the admin listing
func (s *CampaignService) ListRegistrants(ctx context.Context, offset, limit int, search string) (*domain.RegistrantList, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	registrants, err := s.registrants.List(ctx, offset, limit, search)
	if err != nil {
		return nil, err
	}

	total, err := s.registrants.Count(ctx)
	if err != nil {
		return nil, err
	}

	if registrants == nil {
		registrants = []domain.Registrant{}
	}

	return &domain.RegistrantList{
		Registrants: registrants,
		Offset:      offset,
		Limit:       limit,
		Total:       total,
	}, nil
}

// CountRegistrants returns the total number of registrants
func (s *CampaignService) CountRegistrants(ctx context.Context) (int, error) {
	return s.registrants.Count(ctx)
}

// ResetAllUsage clears redemption state on every registrant. Registrants
// themselves are kept.
func (s *CampaignService) ResetAllUsage(ctx context.Context) (int64, error) {
	affected, err := s.registrants.ResetAllUsage(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Registrant usage reset",
		zap.Int64("registrants_affected", affected))

	return affected, nil
}

// parseDeadline parses a deadline string. An empty string clears the
// deadline. Values without a UTC offset are interpreted in the campaign
// timezone.
func (s *CampaignService) parseDeadline(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.In(s.location)
		return &t, nil
	}

	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, s.location); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("invalid enrollment deadline %q", value)
}
