package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/casaluna/hotel-pms/internal/core/ports"
)

const (
	cachePrefix     = "cache:"
	defaultCacheTTL = 24 * time.Hour
	scanBatch       = 200
)

// ResponseCache stores the last good response of each GET URL under a
// version namespace.
// Key format: cache:<version>:<request_uri>
type ResponseCache struct {
	client  *redis.Client
	version string
	ttl     time.Duration
}

func NewResponseCache(client *redis.Client, version string) *ResponseCache {
	return &ResponseCache{client: client, version: version, ttl: defaultCacheTTL}
}

// Get returns nil, nil when nothing is cached for uri.
func (c *ResponseCache) Get(ctx context.Context, uri string) (*ports.CachedResponse, error) {
	raw, err := c.client.Get(ctx, c.key(uri)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var resp ports.CachedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &resp, nil
}

func (c *ResponseCache) Set(ctx context.Context, uri string, resp *ports.CachedResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(uri), raw, c.ttl).Err()
}

// PurgeOtherVersions deletes every cached response written under a version
// other than the current one and returns how many keys were removed.
func (c *ResponseCache) PurgeOtherVersions(ctx context.Context) (int, error) {
	current := cachePrefix + c.version + ":"
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, cachePrefix+"*", scanBatch).Result()
		if err != nil {
			return removed, fmt.Errorf("cache scan: %w", err)
		}
		stale := keys[:0]
		for _, k := range keys {
			if !strings.HasPrefix(k, current) {
				stale = append(stale, k)
			}
		}
		if len(stale) > 0 {
			n, err := c.client.Del(ctx, stale...).Result()
			if err != nil {
				return removed, fmt.Errorf("cache purge: %w", err)
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}

func (c *ResponseCache) key(uri string) string {
	return cachePrefix + c.version + ":" + uri
}
