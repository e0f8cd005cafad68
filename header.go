package cachewall

import "net/http"

// outboundDropHeaders are stripped from the inbound request before it is
// forwarded to the upstream origin.
var outboundDropHeaders = []string{
	"Connection",
	"Upgrade",
	"Transfer-Encoding",
	"Proxy-Connection",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailers",
	"Host",
	"X-Forwarded-For",
	"X-Forwarded-Proto",
	"X-Forwarded-Port",
}

// inboundDropHeaders are stripped from the upstream response before it is
// stored and before it is replayed to the client.
var inboundDropHeaders = []string{
	"Content-Encoding",
	"Content-Length",
	"Transfer-Encoding",
	"Connection",
	"Upgrade",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailers",
	"Cache-Control",
}

// SanitizeOutboundHeaders returns the header set to send to the upstream
// origin: the hop-by-hop/proxy-chain headers removed, Host overwritten
// with the upstream authority, and Accept-Encoding forced to identity so
// the cached bytes equal the bytes actually received.
func SanitizeOutboundHeaders(inbound http.Header, upstreamHost string) http.Header {
	out := cloneHeaderWithout(inbound, outboundDropHeaders)
	out.Set("Host", upstreamHost)
	out.Set("Accept-Encoding", "identity")
	return out
}

// SanitizeInboundHeaders returns the upstream response headers with
// hop-by-hop, content-coding, and cache-control headers removed. The
// handler sets its own Cache-Control; the serialization layer recomputes
// Content-Length.
func SanitizeInboundHeaders(upstream http.Header) http.Header {
	return cloneHeaderWithout(upstream, inboundDropHeaders)
}

func cloneHeaderWithout(src http.Header, drop []string) http.Header {
	out := make(http.Header, len(src))
	for name, values := range src {
		if containsFold(drop, name) {
			continue
		}
		out[name] = append([]string(nil), values...)
	}
	return out
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if http.CanonicalHeaderKey(n) == http.CanonicalHeaderKey(name) {
			return true
		}
	}
	return false
}
