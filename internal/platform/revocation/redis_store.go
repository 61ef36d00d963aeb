// Package revocation implements the token revocation set consulted on every
// authenticated request. Revoked token IDs are remembered until the token's
// natural expiry, after which the entry is useless and allowed to disappear.
package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the revocation set in Redis so that logout is visible to
// every process sharing the same Redis instance.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new RedisStore instance.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "revoked"
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

// key returns the Redis key for a revoked token ID.
func (s *RedisStore) key(tokenID string) string {
	return fmt.Sprintf("%s:%s", s.prefix, tokenID)
}

// Revoke adds the token ID to the revocation set until the token's expiry.
// Revoking an already-revoked or already-expired token is a no-op success.
func (s *RedisStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// The token is past its expiry and validation rejects it anyway.
		return nil
	}
	return s.client.Set(ctx, s.key(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether the token ID is in the revocation set.
func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
