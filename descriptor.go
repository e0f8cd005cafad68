package cachewall

import (
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Descriptor is the ephemeral per-request view the engine operates on.
type Descriptor struct {
	Tenant    string
	Method    string
	TargetURL string
	Body      []byte
	TTLRaw    string
	Headers   http.Header
}

// NewDescriptor extracts a Descriptor from an inbound HTTP request. It
// reads r.Body to the end and closes it; the body is not readable from the
// request afterward.
func NewDescriptor(r *http.Request) (Descriptor, *Error) {
	body, err := readBody(r)
	if err != nil {
		return Descriptor{}, NewError(KindBadRequest, "could not read request body", err)
	}

	targetURL := r.URL.Query().Get("url")
	if targetURL == "" {
		return Descriptor{}, NewError(KindBadRequest, "missing url query parameter", nil)
	}
	parsed, err := url.Parse(targetURL)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return Descriptor{}, NewError(KindBadRequest, "url must be an absolute http(s) url", err)
	}

	return Descriptor{
		Tenant:    tenantFromHost(r.Host),
		Method:    strings.ToUpper(r.Method),
		TargetURL: targetURL,
		Body:      body,
		TTLRaw:    r.URL.Query().Get("ttl"),
		Headers:   r.Header,
	}, nil
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

// tenantFromHost returns the lowercased leftmost DNS label of host, or
// "default" if host (with any port removed) is empty or starts with a dot.
// A host without a dot is its own leftmost label.
func tenantFromHost(host string) string {
	host = strings.ToLower(host)
	host = stripPort(host)
	if host == "" {
		return "default"
	}
	label := strings.SplitN(host, ".", 2)[0]
	if label == "" {
		return "default"
	}
	return label
}

// stripPort removes an optional ":port" suffix without requiring a
// bracketed IPv6 host, unlike net.SplitHostPort.
func stripPort(host string) string {
	if i := strings.LastIndex(host, ":"); i != -1 && !strings.Contains(host[i+1:], "]") {
		return host[:i]
	}
	return host
}
