package container

import (
	"fmt"
	"time"

	"promo-api/internal/config"
	"promo-api/internal/repository"
	"promo-api/internal/service"
	"promo-api/pkg/database"
	"promo-api/pkg/logger"
	"promo-api/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	Location    *time.Location
	DB          *database.PostgresDB
	RedisClient *redis.Client

	Registration *service.RegistrationService
	Redemption   *service.RedemptionService
	Campaign     *service.CampaignService
}

// New creates a new dependency injection container
func New(cfg *config.Config, log *logger.Logger, db *database.PostgresDB) (*Container, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// Redis is optional; without it the services go straight to Postgres
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			log.Info("Redis client initialized successfully")
		}
	} else {
		log.Info("Redis URL not configured, proceeding without caching")
	}

	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	registrantRepo := repository.NewRegistrantRepository(db)
	configRepo := repository.NewCampaignConfigRepository(db)

	cache := service.NewCacheService(redisClient, log.Logger)

	return &Container{
		Config:       cfg,
		Logger:       log,
		Location:     location,
		DB:           db,
		RedisClient:  redisClient,
		Registration: service.NewRegistrationService(registrantRepo, configRepo, cache, location, log.Logger),
		Redemption:   service.NewRedemptionService(registrantRepo, location, log.Logger),
		Campaign:     service.NewCampaignService(configRepo, registrantRepo, cache, location, log.Logger),
	}, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetDB returns the database handle
func (c *Container) GetDB() *database.PostgresDB {
	return c.DB
}

// GetRedisClient returns the Redis client (may be nil if not configured)
func (c *Container) GetRedisClient() *redis.Client {
	return c.RedisClient
}

// HasRedis returns true if Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}
