package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/bellasalon/booking-api/internal/config"
	"github.com/bellasalon/booking-api/internal/models"
)

const (
	servicesKey = "catalog:services"
	servicesTTL = 10 * time.Minute
)

// ServiceCache guarda o catálogo (imutável depois do seed) no Redis.
// Sem Redis configurado, ou com Redis fora do ar, tudo degrada para o
// banco em silêncio.
type ServiceCache struct {
	client *redis.Client
}

func NewServiceCache(cfg *config.Config) *ServiceCache {
	if cfg.RedisURL == "" {
		return &ServiceCache{}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Println("cache: invalid REDIS_URL, running without cache:", err)
		return &ServiceCache{}
	}

	return &ServiceCache{client: redis.NewClient(opts)}
}

func (c *ServiceCache) Get(ctx context.Context) ([]models.Service, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, servicesKey).Bytes()
	if err != nil {
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, false
	}
	return services, true
}

func (c *ServiceCache) Set(ctx context.Context, services []models.Service) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(services)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, servicesKey, raw, servicesTTL).Err(); err != nil {
		log.Println("cache: failed to store services:", err)
	}
}
