package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"promo-api/internal/domain"
	"promo-api/internal/repository"
	"promo-api/pkg/qrtoken"
	"promo-api/pkg/utils"
)

const (
	minimumAgeYears = 15

	// Attempts for the (practically unreachable) QR token collision case
	maxTokenAttempts = 3
)

// RegistrationService runs the enrollment workflow: duplicate detection,
// eligibility gating and registrant creation.
type RegistrationService struct {
	registrants repository.RegistrantRepository
	configs     repository.CampaignConfigRepository
	cache       *CacheService
	location    *time.Location
	logger      *zap.Logger
	now         func() time.Time
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	registrants repository.RegistrantRepository,
	configs repository.CampaignConfigRepository,
	cache *CacheService,
	location *time.Location,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrants: registrants,
		configs:     configs,
		cache:       cache,
		location:    location,
		logger:      logger,
		now:         time.Now,
	}
}

// Register processes an enrollment attempt. Checkpoints run in strict
// order: duplicate lookup, enrollment deadline, registrant cap, then
// validation and creation. A duplicate submission is not an error; the
// existing record comes back with StatusAlreadyRegistered so the caller
// can show the original QR token again.
func (s *RegistrationService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.RegistrationResult, error) {
	nationalID := utils.StripNonDigits(req.NationalID)

	phone, err := utils.NormalizePhoneNumber(req.Phone)
	if err != nil {
		return nil, domain.ErrInvalidPhone
	}

	// Duplicate check runs on the stripped CPF so a formatted
	// re-submission still finds the original record
	existing, err := s.registrants.GetByNationalIDOrPhone(ctx, nationalID, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Info("Duplicate registration, returning existing record",
			zap.String("registrant_id", existing.ID.String()))
		return &domain.RegistrationResult{
			Status:     domain.StatusAlreadyRegistered,
			Registrant: existing,
		}, nil
	}

	config, err := s.configs.Get(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, domain.ErrConfigMissing
	}

	now := s.now().In(s.location)

	if config.EnrollmentDeadline != nil && now.After(config.EnrollmentDeadline.In(s.location)) {
		return nil, domain.ErrEnrollmentClosed
	}

	count, ok := s.cache.GetRegistrantCount(ctx)
	if !ok {
		count, err = s.registrants.Count(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.SetRegistrantCount(ctx, count)
	}
	if count >= config.RegistrantCap {
		return nil, domain.ErrCapacityExceeded
	}

	normalizedCPF, err := utils.NormalizeCPF(nationalID)
	if err != nil {
		return nil, err
	}

	birthDate, err := s.parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	if err := s.checkMinimumAge(birthDate, now); err != nil {
		return nil, err
	}

	registrant := &domain.Registrant{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(req.Name),
		NationalID: normalizedCPF,
		Phone:      phone,
		BirthDate:  birthDate,
	}

	for attempt := 1; ; attempt++ {
		registrant.QRToken, err = qrtoken.Generate(normalizedCPF)
		if err != nil {
			return nil, err
		}

		err = s.registrants.Create(ctx, registrant)
		if err == nil {
			break
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "qr_token") && attempt < maxTokenAttempts {
				s.logger.Warn("QR token collision, regenerating",
					zap.Int("attempt", attempt))
				continue
			}
			if strings.Contains(pgErr.ConstraintName, "cpf") || strings.Contains(pgErr.ConstraintName, "phone") {
				// Lost a race against a concurrent registration with
				// the same identity; resolve it as a duplicate
				existing, lookupErr := s.registrants.GetByNationalIDOrPhone(ctx, normalizedCPF, phone)
				if lookupErr != nil {
					return nil, lookupErr
				}
				if existing != nil {
					return &domain.RegistrationResult{
						Status:     domain.StatusAlreadyRegistered,
						Registrant: existing,
					}, nil
				}
			}
		}
		return nil, err
	}

	s.cache.InvalidateRegistrantCount(ctx)

	s.logger.Info("Registrant created",
		zap.String("registrant_id", registrant.ID.String()))

	return &domain.RegistrationResult{
		Status:     domain.StatusCreated,
		Registrant: registrant,
	}, nil
}

// parseBirthDate parses a YYYY-MM-DD birth date in the campaign timezone
func (s *RegistrationService) parseBirthDate(value string) (time.Time, error) {
	birthDate, err := time.ParseInLocation("2006-01-02", value, s.location)
	if err != nil {
		return time.Time{}, domain.ErrInvalidBirthDate
	}
	return birthDate, nil
}

// checkMinimumAge verifies the registrant is at least 15 years old today
func (s *RegistrationService) checkMinimumAge(birthDate, now time.Time) error {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location).
		AddDate(-minimumAgeYears, 0, 0)
	if birthDate.After(cutoff) {
		return domain.ErrUnderMinimumAge
	}
	return nil
}
