// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spendwise/backend/internal/application/adapter"
)

// summaryCache implements adapter.SummaryCache on Redis. Keys are scoped per
// user so a mutation can drop every cached range for that user in one pass.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a new Redis-backed summary cache instance.
func NewSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached payload for the key, if present.
func (c *summaryCache) Get(ctx context.Context, userID uuid.UUID, rangeKey string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, cacheKey(userID, rangeKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores the payload under the key with the configured TTL.
func (c *summaryCache) Set(ctx context.Context, userID uuid.UUID, rangeKey string, payload []byte) error {
	return c.client.Set(ctx, cacheKey(userID, rangeKey), payload, c.ttl).Err()
}

// InvalidateUser drops all cached summaries for the user.
func (c *summaryCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	pattern := "summary:" + userID.String() + ":*"

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// cacheKey builds the per-user, per-range cache key.
func cacheKey(userID uuid.UUID, rangeKey string) string {
	return "summary:" + userID.String() + ":" + rangeKey
}
