package cachewall

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// writeFixedEnvelopeHeaders sets the cache-observability and
// never-cache-me headers common to every reply, hit or miss.
func writeFixedEnvelopeHeaders(w http.ResponseWriter, status Status, fingerprint string, remaining time.Duration, now time.Time) {
	h := w.Header()
	h.Set("X-Cache", string(status))
	h.Set("X-Cache-Key", fingerprint)
	h.Set("X-Cache-Expires-In", fmt.Sprintf("%ds", int64(remaining.Seconds())))
	h.Set("X-Response-Time", now.UTC().Format(time.RFC3339))
	h.Set("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0, s-maxage=0")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
	h.Set("Surrogate-Control", "no-store")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
}

// writeResult replays a Result to the client, applying the sanitized
// entry headers first so the fixed envelope headers above always win.
func writeResult(w http.ResponseWriter, result Result, targetURL string, now time.Time) {
	for name, values := range result.Headers {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}
	writeFixedEnvelopeHeaders(w, result.Status, result.Fingerprint, result.Remaining, now)
	if result.Status == StatusMiss {
		w.Header().Set("X-Target-URL", targetURL)
	}
	w.WriteHeader(result.StatusCode)
	w.Write(result.Body)
}

// writeError formats a cachewall.Error as the JSON error body described
// by the error-surface component: {"error": "<kind>", "message": "..."}.
func writeError(w http.ResponseWriter, err *Error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(err.Kind.StatusCode())
	json.NewEncoder(w).Encode(map[string]string{
		"error":   string(err.Kind),
		"message": err.Message,
	})
}
