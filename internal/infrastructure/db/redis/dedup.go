package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker provides the idempotency fast path for hire submissions,
// backed by Redis. The hires table remains the source of truth; these keys
// only short-circuit repeated submissions while they are hot.
// Key format: hire-idem:<idempotency_key>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether a hire was already created under this key.
func (d *DedupChecker) IsDuplicate(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that a hire was created under this key (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, key string) error {
	return d.client.Set(ctx, d.key(key), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(idempotencyKey string) string {
	return fmt.Sprintf("hire-idem:%s", idempotencyKey)
}
