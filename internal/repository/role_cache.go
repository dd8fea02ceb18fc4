package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/admitly/portal-service/internal/domain"
)

const roleCachePrefix = "portal:roles:"

// ErrCacheMiss reports that no cached value exists.
var ErrCacheMiss = errors.New("cache miss")

// RoleCache stores role sets per identity for a bounded time.
type RoleCache interface {
	Get(ctx context.Context, userID string) (domain.RoleSet, error)
	Set(ctx context.Context, userID string, roles domain.RoleSet, ttl time.Duration) error
	Invalidate(ctx context.Context, userID string) error
}

type redisRoleCache struct {
	client redis.Cmdable
}

// NewRedisRoleCache returns a RoleCache backed by Redis.
func NewRedisRoleCache(client redis.Cmdable) RoleCache {
	return &redisRoleCache{client: client}
}

func roleCacheKey(userID string) string {
	return roleCachePrefix + userID
}

func (c *redisRoleCache) Get(ctx context.Context, userID string) (domain.RoleSet, error) {
	raw, err := c.client.Get(ctx, roleCacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var labels []string
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil, err
	}
	roles := make(domain.RoleSet, 0, len(labels))
	for _, l := range labels {
		roles = append(roles, domain.Role(l))
	}
	return roles, nil
}

func (c *redisRoleCache) Set(ctx context.Context, userID string, roles domain.RoleSet, ttl time.Duration) error {
	raw, err := json.Marshal(roles.Strings())
	if err != nil {
		return err
	}
	return c.client.Set(ctx, roleCacheKey(userID), raw, ttl).Err()
}

func (c *redisRoleCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, roleCacheKey(userID)).Err()
}
