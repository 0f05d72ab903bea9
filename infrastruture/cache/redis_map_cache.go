package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/domain"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const mapKeyFmt = "mapgen:map:%s"

// ErrCacheMiss is returned when the requested map is not in the cache.
var ErrCacheMiss = errors.New("map not found in cache")

// RedisMapCache keeps JSON-encoded map records in Redis with a TTL.
type RedisMapCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMapCache initializes a RedisMapCache with the provided Redis
// client and TTL.
func NewRedisMapCache(client *redis.Client, ttlSeconds int) (i.MapCache, error) {
	if client == nil {
		return nil, errors.New("map cache: nil redis client")
	}
	return &RedisMapCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Set stores a record under its ID, replacing any cached copy and resetting
// the TTL.
func (c *RedisMapCache) Set(ctx context.Context, record *dmn.MapRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(mapKeyFmt, record.ID), payload, c.ttl).Err()
}

// Get retrieves a cached record, reporting a miss as ErrCacheMiss.
func (c *RedisMapCache) Get(ctx context.Context, id uuid.UUID) (*dmn.MapRecord, error) {
	payload, err := c.client.Get(ctx, fmt.Sprintf(mapKeyFmt, id)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var record dmn.MapRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Evict drops a record from the cache.
func (c *RedisMapCache) Evict(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, fmt.Sprintf(mapKeyFmt, id)).Err()
}
