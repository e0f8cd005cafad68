package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryPutGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Put(ctx, "cache/abc/response.json", "application/json", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	body, ct, err := m.Get(ctx, "cache/abc/response.json")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(body) != `{"a":1}` {
		t.Errorf("body = %q", body)
	}
	if ct != "application/json" {
		t.Errorf("contentType = %q", ct)
	}
}

func TestMemoryGetMiss(t *testing.T) {
	m := NewMemory()
	_, _, err := m.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_ = m.Put(ctx, "k", "text/plain", []byte("v"))
	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, _, err := m.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// deleting an absent key is idempotent
	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete (again): %v", err)
	}
}
