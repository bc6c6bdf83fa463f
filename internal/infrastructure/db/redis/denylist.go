package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked token IDs backed by Redis.
// Key format: revoked:<jti>, expiring with the token's lifetime so entries
// never outlive the tokens they block.
type TokenDenylist struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenDenylist creates a TokenDenylist. Entries live for ttl, which
// should match the token lifetime.
func NewTokenDenylist(client *redis.Client, ttl time.Duration) *TokenDenylist {
	return &TokenDenylist{client: client, ttl: ttl}
}

// Revoke marks the token ID as revoked.
func (d *TokenDenylist) Revoke(ctx context.Context, jti string) error {
	if err := d.client.Set(ctx, d.key(jti), "1", d.ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token ID has been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *TokenDenylist) key(jti string) string {
	return "revoked:" + jti
}
