package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// setupTestRedis connects to a local Redis instance for tests, skipping
// when none is available (mirrors the ESI-client example's approach).
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available for testing: %v", err)
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("flush test db: %v", err)
	}
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return client
}

func TestRedisPutGetDelete(t *testing.T) {
	client := setupTestRedis(t)
	s := NewRedis(client, time.Minute)
	ctx := context.Background()

	key := "cache/redis123/response.json"
	if err := s.Put(ctx, key, "application/json", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	body, ct, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(body) != `{"v":1}` || ct != "application/json" {
		t.Errorf("got body=%q ct=%q", body, ct)
	}

	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, _, err := s.Get(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewRedisPanicsOnNilClient(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewRedis should panic with nil client")
		}
	}()
	NewRedis(nil, time.Minute)
}
