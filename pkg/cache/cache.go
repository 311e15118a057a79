// Package cache is a thin JSON cache over Redis.
//
// A nil or disabled *Cache is valid: every read misses and every write is a
// no-op, so callers never branch on whether Redis is configured.
//
// Invalidation is done by namespace versioning. Readers build keys with the
// current version and writers Bump it, which orphans every older key until
// its TTL expires:
//
//	v, _ := c.Version(ctx, "products")
//	key := cache.VersionedKey("products", v, "Pizza") // products:v3:Pizza
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/foodshop/pkg/metrics"
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New wraps an existing client. rdb may be nil.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Connect dials Redis at addr and verifies it with a ping. An empty addr
// returns a disabled cache and no error.
func Connect(ctx context.Context, addr, password string, ttl time.Duration) (*Cache, error) {
	if addr == "" {
		return New(nil, ttl), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return New(nil, ttl), fmt.Errorf("cache: redis ping: %w", err)
	}
	return New(rdb, ttl), nil
}

// Enabled reports whether a Redis client is attached.
func (c *Cache) Enabled() bool { return c != nil && c.rdb != nil }

// Get unmarshals the value at key into dest. Returns true on a hit.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if !c.Enabled() {
		return false
	}

	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || json.Unmarshal(val, dest) != nil {
		metrics.CacheMisses.Inc()
		return false
	}
	metrics.CacheHits.Inc()
	return true
}

// Set stores value under key for the cache TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	if !c.Enabled() {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

// Version returns the current version of namespace ns. A missing counter is 0.
func (c *Cache) Version(ctx context.Context, ns string) (int64, error) {
	if !c.Enabled() {
		return 0, nil
	}

	v, err := c.rdb.Get(ctx, versionKey(ns)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Bump increments the version of namespace ns.
func (c *Cache) Bump(ctx context.Context, ns string) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Incr(ctx, versionKey(ns)).Err()
}

// Close releases the Redis connection pool.
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}

// VersionedKey builds "<ns>:v<version>:<part>". An empty part becomes "*".
func VersionedKey(ns string, version int64, part string) string {
	if part == "" {
		part = "*"
	}
	return ns + ":v" + strconv.FormatInt(version, 10) + ":" + part
}

func versionKey(ns string) string { return ns + ":version" }
