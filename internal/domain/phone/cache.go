package phone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent from the cache.
var ErrCacheMiss = errors.New("cache miss")

const (
	activeListKey = "phones:active"
	phoneKeyFmt   = "phones:%d"

	// Short TTL: listings are allowed to be slightly stale, charge sales
	// do not invalidate the cache.
	cacheTTL = 30 * time.Second
)

// Cache is a read-through cache for phone number listings backed by Redis.
type Cache struct {
	client *redis.Client
}

// NewCache creates phone cache. A nil client disables caching entirely.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) GetActiveList(ctx context.Context) ([]PhoneNumber, error) {
	if c == nil || c.client == nil {
		return nil, ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, activeListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var phones []PhoneNumber
	if err := json.Unmarshal(raw, &phones); err != nil {
		return nil, err
	}
	return phones, nil
}

func (c *Cache) SetActiveList(ctx context.Context, phones []PhoneNumber) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(phones)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, activeListKey, raw, cacheTTL).Err()
}

func (c *Cache) GetPhone(ctx context.Context, id int64) (*PhoneNumber, error) {
	if c == nil || c.client == nil {
		return nil, ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, fmt.Sprintf(phoneKeyFmt, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var p PhoneNumber
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Cache) SetPhone(ctx context.Context, p *PhoneNumber) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(phoneKeyFmt, p.ID), raw, cacheTTL).Err()
}
