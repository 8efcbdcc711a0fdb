// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SummaryCache caches serialized summary results per user and date range.
// A cache miss is reported as (nil, false, nil) rather than an error.
type SummaryCache interface {
	// Get returns the cached payload for the key, if present.
	Get(ctx context.Context, userID uuid.UUID, rangeKey string) ([]byte, bool, error)

	// Set stores the payload under the key with the configured TTL.
	Set(ctx context.Context, userID uuid.UUID, rangeKey string, payload []byte) error

	// InvalidateUser drops all cached summaries for the user. Called after
	// any transaction mutation by that user.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}
