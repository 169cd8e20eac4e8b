// Package cache provides the Redis-backed short-lived state for the
// service: one-shot OAuth sign-in states and per-IP intake rate limit
// buckets. Nothing stored here outlives its TTL, so a flushed Redis
// only costs in-flight sign-ins and a brief rate-limit reset.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the Redis client behind the state and rate-limit methods.
type Cache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection.
// Both uses are one key per request with sub-minute TTLs, so the pool
// stays small and idle connections are reaped quickly.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = 8
	opt.MinIdleConns = 1
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = time.Minute

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Ping checks Redis connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Client exposes the underlying Redis client for test helpers.
func (c *Cache) Client() *redis.Client {
	return c.client
}
