package catalog

import (
	"context"
	"encoding/json"
	"time"

	pkgredis "github.com/jpbelardo/tindahan-backend/pkg/redis"
)

const snapshotKeyPart = "snapshot"

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CatalogKey(parts ...string) string
}

// Cache is a read-through JSON cache for the validated catalog. All methods
// are nil-safe so the service degrades to the DB when no cache is wired.
type Cache struct {
	store cacheStore
	ttl   time.Duration
}

// NewCache constructs a cache helper.
func NewCache(store cacheStore, ttl time.Duration) *Cache {
	return &Cache{store: store, ttl: ttl}
}

// GetVariants unmarshals the cached catalog. It reports whether the key existed.
func (c *Cache) GetVariants(ctx context.Context) ([]Variant, bool, error) {
	if c == nil || c.store == nil {
		return nil, false, nil
	}
	raw, err := c.store.Get(ctx, c.store.CatalogKey(snapshotKeyPart))
	if err != nil {
		if err == pkgredis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var variants []Variant
	if err := json.Unmarshal([]byte(raw), &variants); err != nil {
		return nil, false, err
	}
	return variants, true, nil
}

// SetVariants serialises the catalog and stores it with the configured TTL.
func (c *Cache) SetVariants(ctx context.Context, variants []Variant) error {
	if c == nil || c.store == nil {
		return nil
	}
	data, err := json.Marshal(variants)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.store.CatalogKey(snapshotKeyPart), data, c.ttl)
}

// Invalidate drops the cached catalog.
func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil || c.store == nil {
		return nil
	}
	return c.store.Del(ctx, c.store.CatalogKey(snapshotKeyPart))
}
