package store

import (
	"context"
	"errors"
	"testing"
)

func TestEntryStoreRoundTrip(t *testing.T) {
	es := NewEntryStore(NewMemory())
	ctx := context.Background()

	entry := NewEntry(200, map[string][]string{"Content-Type": {"text/plain"}}, []byte("hello world"), 1000, 60)
	if err := es.Put(ctx, "fingerprint-1", entry); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := es.Get(ctx, "fingerprint-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.StatusCode != 200 || got.ExpiresAt != 1060 || got.BodyEncoding != "" {
		t.Errorf("got %+v", got)
	}
	raw, err := got.RawBody()
	if err != nil || string(raw) != "hello world" {
		t.Errorf("RawBody = %q, %v", raw, err)
	}
}

func TestEntryStoreBinaryBodyUsesBase64(t *testing.T) {
	es := NewEntryStore(NewMemory())
	ctx := context.Background()

	binary := []byte{0xff, 0xfe, 0x00, 0x01, 0x80}
	entry := NewEntry(200, nil, binary, 1000, 60)
	if entry.BodyEncoding != "base64" {
		t.Fatalf("expected base64 encoding for non-utf8 body, got %q", entry.BodyEncoding)
	}

	if err := es.Put(ctx, "fp-bin", entry); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := es.Get(ctx, "fp-bin")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	raw, err := got.RawBody()
	if err != nil {
		t.Fatalf("RawBody: %v", err)
	}
	if string(raw) != string(binary) {
		t.Errorf("RawBody = %v, want %v", raw, binary)
	}
}

func TestEntryStoreGetMiss(t *testing.T) {
	es := NewEntryStore(NewMemory())
	_, err := es.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEntryStoreDelete(t *testing.T) {
	es := NewEntryStore(NewMemory())
	ctx := context.Background()
	entry := NewEntry(200, nil, []byte("x"), 0, 10)
	_ = es.Put(ctx, "fp", entry)
	if err := es.Delete(ctx, "fp"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := es.Get(ctx, "fp"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
