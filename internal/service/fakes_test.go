package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"promo-api/internal/domain"
)

// fakeRegistrantRepo is an in-memory RegistrantRepository. It enforces
// the same unique constraints and conditional-update redemption the
// Postgres implementation relies on.
type fakeRegistrantRepo struct {
	mu          sync.Mutex
	registrants []*domain.Registrant
}

func newFakeRegistrantRepo() *fakeRegistrantRepo {
	return &fakeRegistrantRepo{}
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func (f *fakeRegistrantRepo) Create(_ context.Context, registrant *domain.Registrant) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.registrants {
		if existing.NationalID == registrant.NationalID {
			return uniqueViolation("registrants_cpf_key")
		}
		if existing.Phone == registrant.Phone {
			return uniqueViolation("registrants_phone_key")
		}
		if existing.QRToken == registrant.QRToken {
			return uniqueViolation("registrants_qr_token_key")
		}
	}

	registrant.CreatedAt = time.Now()
	stored := *registrant
	f.registrants = append(f.registrants, &stored)
	return nil
}

func (f *fakeRegistrantRepo) GetByNationalIDOrPhone(_ context.Context, nationalID, phone string) (*domain.Registrant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.registrants {
		if existing.NationalID == nationalID || existing.Phone == phone {
			found := *existing
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistrantRepo) GetByToken(_ context.Context, token string) (*domain.Registrant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.registrants {
		if existing.QRToken == token {
			found := *existing
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistrantRepo) Redeem(_ context.Context, token string, usedAt time.Time) (*domain.Registrant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.registrants {
		if existing.QRToken == token && !existing.Used {
			existing.Used = true
			at := usedAt
			existing.UsedAt = &at
			found := *existing
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistrantRepo) List(_ context.Context, offset, limit int, search string) ([]domain.Registrant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []domain.Registrant
	for _, existing := range f.registrants {
		if search != "" &&
			!strings.Contains(strings.ToLower(existing.Name), strings.ToLower(search)) &&
			!strings.Contains(existing.NationalID, search) {
			continue
		}
		matched = append(matched, *existing)
	}

	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeRegistrantRepo) Count(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.registrants), nil
}

func (f *fakeRegistrantRepo) ResetAllUsage(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var affected int64
	for _, existing := range f.registrants {
		if existing.Used {
			existing.Used = false
			existing.UsedAt = nil
			affected++
		}
	}
	return affected, nil
}

// fakeConfigRepo is an in-memory CampaignConfigRepository
type fakeConfigRepo struct {
	mu     sync.Mutex
	config *domain.CampaignConfig
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{}
}

func (f *fakeConfigRepo) Get(_ context.Context) (*domain.CampaignConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.config == nil {
		return nil, nil
	}
	found := *f.config
	return &found, nil
}

func (f *fakeConfigRepo) Create(_ context.Context, config *domain.CampaignConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := *config
	f.config = &stored
	return nil
}

func (f *fakeConfigRepo) Update(_ context.Context, config *domain.CampaignConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.config == nil {
		return domain.ErrConfigMissing
	}
	stored := *config
	f.config = &stored
	return nil
}
