package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sumsingh11/travelmate/internal/domain"
)

// Redis is a KV backed by a Redis server. Each planner key maps directly to
// a Redis string key; values are the same JSON blobs the Memory backend holds.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis returns a Redis-backed KV using the given client. All keys are
// namespaced under prefix (e.g. "travelmate:") so the planner can share a
// Redis instance with other applications.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("store.Redis.Get %q: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("store.Redis.Get %q: %w", key, err)
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	// No TTL: planner state lives until explicitly replaced or deleted.
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("store.Redis.Set %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("store.Redis.Delete %q: %w", key, err)
	}
	return nil
}
