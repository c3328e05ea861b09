package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:jti:"

// TokenBlacklist records logged-out token ids until their natural expiry.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	// RevokeOnce revokes jti and reports whether this call did it. Exactly one
	// of several concurrent callers for the same jti sees true.
	RevokeOnce(ctx context.Context, jti string, ttl time.Duration) (bool, error)
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type tokenBlacklist struct {
	client *redis.Client
}

func NewTokenBlacklist(client *redis.Client) TokenBlacklist {
	return &tokenBlacklist{client: client}
}

func (t *tokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return t.client.Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err()
}

func (t *tokenBlacklist) RevokeOnce(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, nil
	}
	return t.client.SetNX(ctx, revokedKeyPrefix+jti, 1, ttl).Result()
}

func (t *tokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := t.client.Get(ctx, revokedKeyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
