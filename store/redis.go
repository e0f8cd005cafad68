package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis client, using native key TTL as the
// eviction backstop. Grounded on the Redis-backed cache manager pattern of
// GET/SET EX/DEL over a client supplied by the caller.
type Redis struct {
	client *redis.Client
	// DefaultTTL is applied to Put calls; the cache engine sets an
	// explicit expiry by deleting-on-reap itself, so this only bounds how
	// long Redis keeps an entry around if the engine never revisits it.
	DefaultTTL time.Duration
}

// NewRedis wraps an existing *redis.Client as a Store.
func NewRedis(client *redis.Client, defaultTTL time.Duration) *Redis {
	if client == nil {
		panic("store: redis client cannot be nil")
	}
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &Redis{client: client, DefaultTTL: defaultTTL}
}

// encodeRedisBlob builds the wire format stored in each Redis value:
// content type plus base64 body, since redis.Client.Set takes an opaque
// value.
func encodeRedisBlob(contentType string, body []byte) string {
	return contentType + "\n" + base64.StdEncoding.EncodeToString(body)
}

func decodeRedisBlob(raw string) ([]byte, string, error) {
	parts := strings.SplitN(raw, "\n", 2)
	if len(parts) != 2 {
		return nil, "", fmt.Errorf("store: malformed redis blob")
	}
	body, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("store: decode redis blob: %w", err)
	}
	return body, parts[0], nil
}

func (r *Redis) Put(ctx context.Context, key, contentType string, body []byte) error {
	if err := r.client.Set(ctx, key, encodeRedisBlob(contentType, body), r.DefaultTTL).Err(); err != nil {
		return fmt.Errorf("store: redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, string, error) {
	raw, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("store: redis get %s: %w", key, err)
	}
	return decodeRedisBlob(raw)
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("store: redis del %s: %w", key, err)
	}
	return nil
}
