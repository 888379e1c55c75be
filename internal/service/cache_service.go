package service

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"promo-api/internal/domain"
	"promo-api/pkg/redis"
)

// CacheService caches the campaign configuration and the registrant count.
// Per-token redemption state is never cached; redemption correctness rests
// on the database alone. Every method degrades to a no-op when Redis is
// not configured.
type CacheService struct {
	redis  *redis.Client
	logger *zap.Logger
}

// NewCacheService creates a new cache service
func NewCacheService(redisClient *redis.Client, logger *zap.Logger) *CacheService {
	return &CacheService{
		redis:  redisClient,
		logger: logger,
	}
}

// GetConfig retrieves the campaign configuration from cache. The second
// return value reports a hit.
func (c *CacheService) GetConfig(ctx context.Context) (*domain.CampaignConfig, bool) {
	if c.redis == nil {
		return nil, false
	}

	cached, err := c.redis.Get(ctx, c.redis.KeyBuilder.KeyCampaignConfig())
	if err != nil {
		c.logger.Warn("Config cache read failed, falling back to database", zap.Error(err))
		return nil, false
	}
	if cached == "" {
		return nil, false
	}

	var config domain.CampaignConfig
	if err := json.Unmarshal([]byte(cached), &config); err != nil {
		c.logger.Warn("Config cache corrupted, falling back to database", zap.Error(err))
		return nil, false
	}

	return &config, true
}

// SetConfig caches the campaign configuration
func (c *CacheService) SetConfig(ctx context.Context, config *domain.CampaignConfig) {
	if c.redis == nil || config == nil {
		return
	}

	data, err := json.Marshal(config)
	if err != nil {
		return
	}

	if err := c.redis.Set(ctx, c.redis.KeyBuilder.KeyCampaignConfig(), string(data), redis.TTLCampaignConfig); err != nil {
		c.logger.Warn("Failed to cache campaign config", zap.Error(err))
	}
}

// InvalidateConfig drops the cached campaign configuration
func (c *CacheService) InvalidateConfig(ctx context.Context) {
	if c.redis == nil {
		return
	}

	if err := c.redis.Delete(ctx, c.redis.KeyBuilder.KeyCampaignConfig()); err != nil {
		c.logger.Warn("Failed to invalidate campaign config cache", zap.Error(err))
	}
}

// GetRegistrantCount retrieves the cached registrant count. The second
// return value reports a hit.
func (c *CacheService) GetRegistrantCount(ctx context.Context) (int, bool) {
	if c.redis == nil {
		return 0, false
	}

	cached, err := c.redis.Get(ctx, c.redis.KeyBuilder.KeyRegistrantCount())
	if err != nil || cached == "" {
		return 0, false
	}

	count, err := strconv.Atoi(cached)
	if err != nil {
		return 0, false
	}

	return count, true
}

// SetRegistrantCount caches the registrant count with a short TTL
func (c *CacheService) SetRegistrantCount(ctx context.Context, count int) {
	if c.redis == nil {
		return
	}

	if err := c.redis.Set(ctx, c.redis.KeyBuilder.KeyRegistrantCount(), strconv.Itoa(count), redis.TTLRegistrantCount); err != nil {
		c.logger.Warn("Failed to cache registrant count", zap.Error(err))
	}
}

// InvalidateRegistrantCount drops the cached registrant count
func (c *CacheService) InvalidateRegistrantCount(ctx context.Context) {
	if c.redis == nil {
		return
	}

	if err := c.redis.Delete(ctx, c.redis.KeyBuilder.KeyRegistrantCount()); err != nil {
		c.logger.Warn("Failed to invalidate registrant count cache", zap.Error(err))
	}
}
