package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"promo-api/internal/domain"
	"promo-api/internal/repository"
)

// RedemptionService marks QR tokens as used. Redemption is single-use:
// a second attempt on the same token is an error, not a no-op.
type RedemptionService struct {
	registrants repository.RegistrantRepository
	location    *time.Location
	logger      *zap.Logger
	now         func() time.Time
}

// NewRedemptionService creates a new redemption service
func NewRedemptionService(
	registrants repository.RegistrantRepository,
	location *time.Location,
	logger *zap.Logger,
) *RedemptionService {
	return &RedemptionService{
		registrants: registrants,
		location:    location,
		logger:      logger,
		now:         time.Now,
	}
}

// Lookup finds the registrant that owns the token without redeeming it.
// The QR image endpoint uses this to confirm a token before rendering.
func (s *RedemptionService) Lookup(ctx context.Context, token string) (*domain.Registrant, error) {
	if token == "" {
		return nil, domain.ErrTokenNotFound
	}

	registrant, err := s.registrants.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if registrant == nil {
		return nil, domain.ErrTokenNotFound
	}
	return registrant, nil
}

// Redeem atomically flips the token's registrant to used. The repository
// runs a conditional update keyed on the current used flag, so under
// concurrent attempts exactly one caller gets the record back; the rest
// see ErrAlreadyRedeemed.
func (s *RedemptionService) Redeem(ctx context.Context, token string) (*domain.Registrant, error) {
	if token == "" {
		return nil, domain.ErrTokenNotFound
	}

	usedAt := s.now().In(s.location)

	registrant, err := s.registrants.Redeem(ctx, token, usedAt)
	if err != nil {
		return nil, err
	}
	if registrant != nil {
		s.logger.Info("QR token redeemed",
			zap.String("registrant_id", registrant.ID.String()))
		return registrant, nil
	}

	// No unused row matched: distinguish an unknown token from one
	// that was already redeemed
	existing, err := s.registrants.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrTokenNotFound
	}
	return nil, domain.ErrAlreadyRedeemed
}
