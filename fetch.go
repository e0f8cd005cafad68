package cachewall

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// UpstreamTimeout is the hard wall-clock deadline from connect to last byte.
const UpstreamTimeout = 30 * time.Second

// DefaultMaxBodyBytes bounds how much of an upstream response body is
// buffered before UpstreamPayloadTooLarge is raised, mirroring the
// reference environment's payload ceiling explicitly rather than leaving
// it implicit.
const DefaultMaxBodyBytes = 6 * 1024 * 1024

// FetchResult is the sanitization-ready shape of an upstream response.
type FetchResult struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Fetcher performs the upstream request, sanitizing the outbound headers
// and enforcing the timeout and payload-size ceiling. Response headers are
// returned as received; the engine sanitizes them.
type Fetcher struct {
	Client       *http.Client
	MaxBodyBytes int64
}

// NewFetcher returns a Fetcher that never follows redirects (the caller
// sees the redirect response itself, as with any other status). Its client
// has no Transport of its own, so it uses http.DefaultTransport.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// Fetch builds, sends, and fully reads the upstream request for the given
// method, target URL, inbound headers and body.
func (f *Fetcher) Fetch(ctx context.Context, method, targetURL string, inboundHeaders http.Header, body []byte) (FetchResult, *Error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return FetchResult{}, NewError(KindBadRequest, "invalid target url", err)
	}

	ctx, cancel := context.WithTimeout(ctx, UpstreamTimeout)
	defer cancel()

	var bodyReader io.Reader
	if len(body) > 0 {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, targetURL, bodyReader)
	if err != nil {
		return FetchResult{}, NewError(KindBadRequest, "could not build upstream request", err)
	}
	req.Header = SanitizeOutboundHeaders(inboundHeaders, u.Host)

	resp, err := f.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return FetchResult{}, NewError(KindUpstreamTimeout, "upstream request timed out", err)
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return FetchResult{}, NewError(KindUpstreamTimeout, "upstream request timed out", err)
		}
		return FetchResult{}, NewError(KindUpstreamUnreachable, "could not reach upstream", err)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, f.MaxBodyBytes+1)
	respBody, err := io.ReadAll(limited)
	if err != nil {
		if ctx.Err() != nil {
			return FetchResult{}, NewError(KindUpstreamTimeout, "upstream request timed out", err)
		}
		return FetchResult{}, NewError(KindUpstreamUnreachable, "could not read upstream response body", err)
	}
	if int64(len(respBody)) > f.MaxBodyBytes {
		return FetchResult{}, NewError(KindUpstreamPayloadTooLarge, "upstream response exceeded the size ceiling", nil)
	}

	return FetchResult{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}, nil
}
