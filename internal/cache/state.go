package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// oauthStatePrefix is the Redis key prefix for OAuth CSRF state tokens.
	oauthStatePrefix = "oauth:state:"
	// oauthStateTTL bounds how long a login attempt stays valid.
	oauthStateTTL = 10 * time.Minute
)

// ErrStateNotFound is returned when an OAuth state token is unknown or expired.
var ErrStateNotFound = errors.New("oauth state not found")

// SaveOAuthState stores a one-time CSRF state token for a pending login.
// The value records which provider the flow was started for.
func (c *Cache) SaveOAuthState(ctx context.Context, state, provider string) error {
	key := oauthStatePrefix + state
	if err := c.client.Set(ctx, key, provider, oauthStateTTL).Err(); err != nil {
		return fmt.Errorf("failed to save oauth state: %w", err)
	}
	return nil
}

// ConsumeOAuthState atomically fetches and deletes a state token,
// returning the provider it was issued for. A token can be consumed once.
func (c *Cache) ConsumeOAuthState(ctx context.Context, state string) (string, error) {
	key := oauthStatePrefix + state
	provider, err := c.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrStateNotFound
		}
		return "", fmt.Errorf("failed to consume oauth state: %w", err)
	}
	return provider, nil
}
