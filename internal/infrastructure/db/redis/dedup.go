package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Minute

// DeleteDedup remembers recent delete requests so repeats are dropped.
// Key format: dedup:delete:<collection>:<document_id>
type DeleteDedup struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDeleteDedup creates a DeleteDedup wrapping the given Redis client.
func NewDeleteDedup(client *redis.Client) *DeleteDedup {
	return &DeleteDedup{client: client, ttl: dedupTTL}
}

// IsDuplicate reports whether a delete of this document was requested
// within the last dedupTTL.
func (d *DeleteDedup) IsDuplicate(ctx context.Context, collection, id string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(collection, id)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the delete request (expires after dedupTTL).
func (d *DeleteDedup) Mark(ctx context.Context, collection, id string) error {
	return d.client.Set(ctx, d.key(collection, id), "1", d.ttl).Err()
}

func (d *DeleteDedup) key(collection, id string) string {
	return fmt.Sprintf("dedup:delete:%s:%s", collection, id)
}
