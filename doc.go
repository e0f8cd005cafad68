// Package cachewall implements a multi-tenant HTTP caching reverse proxy.
//
// A client addresses the proxy at a tenant-scoped host and names, via
// query parameters, the upstream URL to fetch and the TTL to cache it for.
// The engine fingerprints the request, consults the object store in
// package store, and either replays a cached entry or fetches upstream
// and stores the result under that fingerprint.
//
// There is no single-flight deduplication, no conditional revalidation
// with the upstream, and no Vary-based negotiation: every distinct
// (tenant, method, url, body, ttl) tuple owns exactly one cache entry for
// its full TTL. See cmd/cachewall for the executable entrypoint.
package cachewall
