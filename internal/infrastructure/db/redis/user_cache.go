package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ebuddy/user-api/internal/api/metrics"
	"github.com/ebuddy/user-api/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// UserCache caches profile reads in Redis.
// Key format: user:<id>. Entries are JSON; the json tag on the password
// hash keeps secrets out of the cache.
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache creates a UserCache wrapping the given Redis client.
// If ttl is 0, it defaults to 5 minutes.
func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &UserCache{client: client, ttl: ttl}
}

// Get returns the cached record, or (nil, nil) on a miss.
// A corrupted entry is deleted and treated as a miss.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, error) {
	b, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var u domain.User
	if err := json.Unmarshal(b, &u); err != nil {
		_ = c.client.Del(ctx, c.key(id)).Err()
		metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}

	metrics.ProfileCacheTotal.WithLabelValues("hit").Inc()
	return &u, nil
}

// Set stores the record for the configured TTL.
func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), b, c.ttl).Err()
}

// Invalidate drops the cached record after an update or delete.
func (c *UserCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *UserCache) key(id string) string {
	return "user:" + id
}
