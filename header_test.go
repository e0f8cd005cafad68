package cachewall

import (
	"net/http"
	"testing"
)

func TestSanitizeOutboundHeadersDropsHopByHop(t *testing.T) {
	in := http.Header{
		"Connection":      {"keep-alive"},
		"Host":            {"client-facing-host"},
		"X-Forwarded-For": {"1.2.3.4"},
		"Authorization":   {"Bearer secret"},
		"Accept":          {"text/html"},
	}
	out := SanitizeOutboundHeaders(in, "upstream.example.com")

	for _, dropped := range []string{"Connection", "X-Forwarded-For"} {
		if _, ok := out[http.CanonicalHeaderKey(dropped)]; ok {
			t.Errorf("expected %s to be dropped", dropped)
		}
	}
	if got := out.Get("Host"); got != "upstream.example.com" {
		t.Errorf("Host = %q, want upstream.example.com", got)
	}
	if got := out.Get("Accept-Encoding"); got != "identity" {
		t.Errorf("Accept-Encoding = %q, want identity", got)
	}
	if got := out.Get("Authorization"); got != "Bearer secret" {
		t.Errorf("Authorization should be preserved, got %q", got)
	}
	if got := out.Get("Accept"); got != "text/html" {
		t.Errorf("Accept should be preserved, got %q", got)
	}
}

func TestSanitizeInboundHeadersDropsContentCoding(t *testing.T) {
	in := http.Header{
		"Content-Encoding": {"gzip"},
		"Content-Length":   {"1234"},
		"Cache-Control":    {"max-age=60"},
		"Etag":             {`"abc123"`},
	}
	out := SanitizeInboundHeaders(in)

	for _, dropped := range []string{"Content-Encoding", "Content-Length", "Cache-Control"} {
		if _, ok := out[http.CanonicalHeaderKey(dropped)]; ok {
			t.Errorf("expected %s to be dropped", dropped)
		}
	}
	if got := out.Get("Etag"); got != `"abc123"` {
		t.Errorf("Etag should be preserved, got %q", got)
	}
}

func TestSanitizeDoesNotMutateSource(t *testing.T) {
	in := http.Header{"Connection": {"keep-alive"}, "Accept": {"*/*"}}
	_ = SanitizeOutboundHeaders(in, "example.com")
	if got := in.Get("Connection"); got != "keep-alive" {
		t.Errorf("source header map was mutated")
	}
}
