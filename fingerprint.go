package cachewall

import (
	"crypto/sha256"
	"fmt"
)

// reservedVarySlot is a fixed placeholder in the fingerprint's canonical
// byte sequence. It is not computed from the request; it exists so that a
// future Vary-style extension could occupy the slot without reshuffling
// every other field's position. It must never be replaced with a live
// value — doing so would silently change every existing fingerprint.
const reservedVarySlot = "{}"

// Fingerprint computes the 64-character lowercase-hex cache key for a
// request, following the canonical byte sequence:
//
//	tenant : METHOD : target_url : "{}" : body : ttl_raw
func Fingerprint(tenant, method, targetURL string, body []byte, ttlRaw string) string {
	h := sha256.New()
	h.Write([]byte(tenant))
	h.Write([]byte(":"))
	h.Write([]byte(method))
	h.Write([]byte(":"))
	h.Write([]byte(targetURL))
	h.Write([]byte(":"))
	h.Write([]byte(reservedVarySlot))
	h.Write([]byte(":"))
	h.Write(body)
	h.Write([]byte(":"))
	h.Write([]byte(ttlRaw))
	return fmt.Sprintf("%x", h.Sum(nil))
}
