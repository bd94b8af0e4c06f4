package venue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ved-B18/ground-finder-pro/internal/logger"
)

const (
	browseCacheKey = "venues:published"
	browseCacheTTL = 60 * time.Second
)

// Cache is a read-through cache for the unfiltered browse listing.
// Filtered queries always hit the database.
type Cache struct {
	redis *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{redis: rdb}
}

func (c *Cache) GetBrowse(ctx context.Context) ([]Venue, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}

	data, err := c.redis.Get(ctx, browseCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var venues []Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		logger.Errorf("Bad browse cache payload: %v", err)
		return nil, false
	}

	return venues, true
}

func (c *Cache) SetBrowse(ctx context.Context, venues []Venue) {
	if c == nil || c.redis == nil {
		return
	}

	data, err := json.Marshal(venues)
	if err != nil {
		return
	}

	if err := c.redis.Set(ctx, browseCacheKey, data, browseCacheTTL).Err(); err != nil {
		logger.Errorf("Failed to set browse cache: %v", err)
	}
}

func (c *Cache) InvalidateBrowse(ctx context.Context) {
	if c == nil || c.redis == nil {
		return
	}

	if err := c.redis.Del(ctx, browseCacheKey).Err(); err != nil {
		logger.Errorf("Failed to invalidate browse cache: %v", err)
	}
}
