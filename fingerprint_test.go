package cachewall

import "testing"

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint("acme", "GET", "https://example.com/widgets", []byte(""), "5m")
	b := Fingerprint("acme", "GET", "https://example.com/widgets", []byte(""), "5m")
	if a != b {
		t.Errorf("fingerprint not deterministic: %s != %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("fingerprint length = %d, want 64", len(a))
	}
}

func TestFingerprintVariesByField(t *testing.T) {
	base := Fingerprint("acme", "GET", "https://example.com/widgets", []byte(""), "5m")

	variants := []string{
		Fingerprint("other-tenant", "GET", "https://example.com/widgets", []byte(""), "5m"),
		Fingerprint("acme", "POST", "https://example.com/widgets", []byte(""), "5m"),
		Fingerprint("acme", "GET", "https://example.com/gadgets", []byte(""), "5m"),
		Fingerprint("acme", "GET", "https://example.com/widgets", []byte("payload"), "5m"),
		Fingerprint("acme", "GET", "https://example.com/widgets", []byte(""), "1h"),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collided with base fingerprint", i)
		}
	}
}

func TestFingerprintSameTenantDifferentCasePreservedInURL(t *testing.T) {
	// tenant extraction/lowercasing happens upstream of Fingerprint; here
	// we confirm the function itself does no implicit normalization.
	a := Fingerprint("acme", "GET", "https://example.com/Widgets", []byte(""), "5m")
	b := Fingerprint("acme", "GET", "https://example.com/widgets", []byte(""), "5m")
	if a == b {
		t.Error("expected distinct fingerprints for distinct-case URLs")
	}
}
