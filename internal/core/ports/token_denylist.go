package ports

import "context"

// TokenDenylist records revoked token IDs so that signed-out tokens stop
// authenticating before their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
