package cachewall

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/cachewall/cachewall/store"
)

// Status is the cache-observability outcome of a single Serve call.
type Status string

const (
	StatusHit  Status = "HIT"
	StatusMiss Status = "MISS"
)

// Result is returned by Engine.Serve.
type Result struct {
	Status      Status
	StatusCode  int
	Headers     http.Header
	Body        []byte
	Remaining   time.Duration
	Fingerprint string
}

// Engine orchestrates the get -> hit/miss -> fetch -> write -> reply
// sequence described by the cache-engine component. No single-flight
// deduplication is performed: concurrent requests for the same key may
// each independently miss and independently fetch upstream.
type Engine struct {
	Store      *store.EntryStore
	Fetcher    *Fetcher
	DefaultTTL int64
	Log        zerolog.Logger
}

// NewEngine wires a blob Store, a Fetcher, and a default TTL into an Engine.
func NewEngine(backend store.Store, fetcher *Fetcher, defaultTTLSeconds int64, logger zerolog.Logger) *Engine {
	return &Engine{
		Store:      store.NewEntryStore(backend),
		Fetcher:    fetcher,
		DefaultTTL: defaultTTLSeconds,
		Log:        logger,
	}
}

// Serve runs the full cache decision for descriptor at time now.
func (e *Engine) Serve(ctx context.Context, d Descriptor, now time.Time) (Result, *Error) {
	ttl := ParseTTL(d.TTLRaw, e.DefaultTTL)
	if ttl == 0 {
		return Result{}, NewError(KindBadRequest, "ttl must resolve to a positive number of seconds", nil)
	}

	key := Fingerprint(d.Tenant, d.Method, d.TargetURL, d.Body, d.TTLRaw)
	logger := e.Log.With().Str("fingerprint", key).Str("tenant", d.Tenant).Str("method", d.Method).Str("target_url", d.TargetURL).Logger()

	entry, err := e.Store.Get(ctx, key)
	if err == nil {
		nowUnix := now.Unix()
		if entry.ExpiresAt > nowUnix {
			logger.Debug().Msg("cache hit")
			body, decodeErr := entry.RawBody()
			if decodeErr != nil {
				logger.Error().Err(decodeErr).Msg("could not decode cached body")
			} else {
				return Result{
					Status:      StatusHit,
					StatusCode:  entry.StatusCode,
					Headers:     http.Header(entry.Headers),
					Body:        body,
					Remaining:   time.Duration(entry.ExpiresAt-nowUnix) * time.Second,
					Fingerprint: key,
				}, nil
			}
		} else {
			logger.Trace().Msg("cache entry expired, reaping")
			if delErr := e.Store.Delete(ctx, key); delErr != nil {
				logger.Error().Err(delErr).Msg("could not reap expired entry")
			}
		}
	} else if err != store.ErrNotFound {
		logger.Error().Err(err).Msg("store.get failed, treating as miss")
	}

	logger.Debug().Msg("upstream start")
	fetchStart := time.Now()
	fetched, fetchErr := e.Fetcher.Fetch(ctx, d.Method, d.TargetURL, d.Headers, d.Body)
	if fetchErr != nil {
		return Result{}, fetchErr
	}
	logger.Debug().Int("status_code", fetched.StatusCode).Int64("elapsed_ms", time.Since(fetchStart).Milliseconds()).Msg("upstream finish")

	sanitized := SanitizeInboundHeaders(fetched.Headers)
	cachedAt := now.Unix()
	newEntry := store.NewEntry(fetched.StatusCode, sanitized, fetched.Body, cachedAt, ttl)

	if putErr := e.Store.Put(ctx, key, newEntry); putErr != nil {
		logger.Error().Err(putErr).Msg("could not write cache entry, serving response anyway")
	} else {
		logger.Debug().Msg("cache miss, stored new entry")
	}

	return Result{
		Status:      StatusMiss,
		StatusCode:  fetched.StatusCode,
		Headers:     sanitized,
		Body:        fetched.Body,
		Remaining:   time.Duration(ttl) * time.Second,
		Fingerprint: key,
	}, nil
}
