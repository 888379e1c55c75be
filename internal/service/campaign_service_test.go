package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"promo-api/internal/domain"
)

func newTestCampaignService(t *testing.T) (*CampaignService, *fakeRegistrantRepo, *fakeConfigRepo) {
	t.Helper()

	registrants := newFakeRegistrantRepo()
	configs := newFakeConfigRepo()
	cache := NewCacheService(nil, zap.NewNop())

	svc := NewCampaignService(configs, registrants, cache, testLocation, zap.NewNop())
	return svc, registrants, configs
}

func TestBootstrap_CreatesDefaultConfig(t *testing.T) {
	svc, _, configs := newTestCampaignService(t)

	require.NoError(t, svc.Bootstrap(context.Background(), "Promoção", 500, "secret"))

	config, err := configs.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "Promoção", config.Title)
	assert.Equal(t, 500, config.RegistrantCap)
	require.NotNil(t, config.EnrollmentDeadline)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *config.EnrollmentDeadline, time.Minute)

	// Password is stored hashed, never in plaintext
	assert.NotEqual(t, "secret", config.AdminPasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte("secret")))
}

func TestBootstrap_IsIdempotent(t *testing.T) {
	svc, _, configs := newTestCampaignService(t)

	require.NoError(t, svc.Bootstrap(context.Background(), "Primeira", 500, "secret"))
	first, err := configs.Get(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Bootstrap(context.Background(), "Segunda", 900, "other"))
	second, err := configs.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Primeira", second.Title)
	assert.Equal(t, 500, second.RegistrantCap)
}

func TestUpdateConfig_PartialUpdate(t *testing.T) {
	svc, _, configs := newTestCampaignService(t)
	require.NoError(t, svc.Bootstrap(context.Background(), "Promoção", 500, "secret"))

	before, err := configs.Get(context.Background())
	require.NoError(t, err)

	newCap := 750
	updated, err := svc.UpdateConfig(context.Background(), &domain.ConfigUpdateRequest{
		RegistrantCap: &newCap,
	})
	require.NoError(t, err)

	assert.Equal(t, 750, updated.RegistrantCap)
	assert.Equal(t, before.Title, updated.Title)
	assert.Equal(t, before.AdminPasswordHash, updated.AdminPasswordHash)
	assert.True(t, updated.LastUpdatedAt.After(before.LastUpdatedAt) || updated.LastUpdatedAt.Equal(before.LastUpdatedAt))
}

func TestUpdateConfig_PasswordIsRehashed(t *testing.T) {
	svc, _, _ := newTestCampaignService(t)
	require.NoError(t, svc.Bootstrap(context.Background(), "Promoção", 500, "secret"))

	newPassword := "new-secret"
	updated, err := svc.UpdateConfig(context.Background(), &domain.ConfigUpdateRequest{
		AdminPassword: &newPassword,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "new-secret", updated.AdminPasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.AdminPasswordHash), []byte("new-secret")))
}

func TestUpdateConfig_DeadlineWithoutOffsetUsesCampaignTimezone(t *testing.T) {
	svc, _, _ := newTestCampaignService(t)
	require.NoError(t, svc.Bootstrap(context.Background(), "Promoção", 500, "secret"))

	deadline := "2026-12-24T20:00:00"
	updated, err := svc.UpdateConfig(context.Background(), &domain.ConfigUpdateRequest{
		EnrollmentDeadline: &deadline,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.EnrollmentDeadline)
	expected := time.Date(2026, 12, 24, 20, 0, 0, 0, testLocation)
	assert.True(t, updated.EnrollmentDeadline.Equal(expected))
}

func TestUpdateConfig_EmptyDeadlineClears(t *testing.T) {
	svc, _, _ := newTestCampaignService(t)
	require.NoError(t, svc.Bootstrap(context.Background(), "Promoção", 500, "secret"))

	empty := ""
	updated, err := svc.UpdateConfig(context.Background(), &domain.ConfigUpdateRequest{
		EnrollmentDeadline: &empty,
	})
	require.NoError(t, err)

	assert.Nil(t, updated.EnrollmentDeadline)
}

func TestUpdateConfig_InvalidDeadline(t *testing.T) {
	svc, _, _ := newTestCampaignService(t)
	require.NoError(t, svc.Bootstrap(context.Background(), "Promoção", 500, "secret"))

	bad := "next friday"
	_, err := svc.UpdateConfig(context.Background(), &domain.ConfigUpdateRequest{
		EnrollmentDeadline: &bad,
	})
	assert.Error(t, err)
}

func TestUpdateConfig_MissingConfig(t *testing.T) {
	svc, _, _ := newTestCampaignService(t)

	title := "Promoção"
	_, err := svc.UpdateConfig(context.Background(), &domain.ConfigUpdateRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrConfigMissing)
}

func TestVerifyAdminPassword(t *testing.T) {
	svc, _, _ := newTestCampaignService(t)
	require.NoError(t, svc.Bootstrap(context.Background(), "Promoção", 500, "secret"))

	ok, err := svc.VerifyAdminPassword(context.Background(), "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyAdminPassword(context.Background(), "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResetAllUsage(t *testing.T) {
	svc, registrants, _ := newTestCampaignService(t)
	require.NoError(t, svc.Bootstrap(context.Background(), "Promoção", 500, "secret"))

	first := seedRegistrant(t, registrants, "token-1")

	require.NoError(t, registrants.Create(context.Background(), &domain.Registrant{
		Name: "João Souza", NationalID: "11144477735", Phone: "92999990002", QRToken: "token-2",
	}))

	// Redeem the first one
	_, err := registrants.Redeem(context.Background(), "token-1", time.Now())
	require.NoError(t, err)

	affected, err := svc.ResetAllUsage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	restored, err := registrants.GetByToken(context.Background(), "token-1")
	require.NoError(t, err)
	assert.False(t, restored.Used)
	assert.Nil(t, restored.UsedAt)

	// Untouched fields survive the reset
	assert.Equal(t, first.Name, restored.Name)
	assert.Equal(t, first.QRToken, restored.QRToken)
}

func TestListRegistrants_Pagination(t *testing.T) {
	svc, registrants, _ := newTestCampaignService(t)
	require.NoError(t, svc.Bootstrap(context.Background(), "Promoção", 500, "secret"))

	tokens := []string{"t1", "t2", "t3"}
	cpfs := []string{"52998224725", "11144477735", "12345678909"}
	for i, token := range tokens {
		registrant := &domain.Registrant{
			Name:       "Registrant",
			NationalID: cpfs[i],
			Phone:      fmt.Sprintf("9299999000%d", i+1),
			QRToken:    token,
		}
		require.NoError(t, registrants.Create(context.Background(), registrant))
	}

	page, err := svc.ListRegistrants(context.Background(), 0, 2, "")
	require.NoError(t, err)
	assert.Len(t, page.Registrants, 2)
	assert.Equal(t, 3, page.Total)

	page, err = svc.ListRegistrants(context.Background(), 2, 2, "")
	require.NoError(t, err)
	assert.Len(t, page.Registrants, 1)
}

func TestListRegistrants_Search(t *testing.T) {
	svc, registrants, _ := newTestCampaignService(t)
	require.NoError(t, svc.Bootstrap(context.Background(), "Promoção", 500, "secret"))

	require.NoError(t, registrants.Create(context.Background(), &domain.Registrant{
		Name: "Maria Silva", NationalID: "52998224725", Phone: "92999990001", QRToken: "t1",
	}))
	require.NoError(t, registrants.Create(context.Background(), &domain.Registrant{
		Name: "João Souza", NationalID: "11144477735", Phone: "92999990002", QRToken: "t2",
	}))

	page, err := svc.ListRegistrants(context.Background(), 0, 10, "maria")
	require.NoError(t, err)
	require.Len(t, page.Registrants, 1)
	assert.Equal(t, "Maria Silva", page.Registrants[0].Name)
}
