package cachewall

import (
	"regexp"
	"strconv"
)

const maxTTLSeconds = 1<<31 - 1

var ttlPattern = regexp.MustCompile(`^([0-9]+)([smhd])$`)

var ttlUnitSeconds = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
}

// ParseTTL converts a raw TTL expression such as "30s", "5m", "2h", or "7d"
// into whole seconds. An empty or non-matching input yields defaultSeconds,
// the deployment-wide fallback, rather than an error: only an explicit,
// well-formed expression that resolves to zero is ever rejected, and that
// rejection happens at the cache-engine boundary, not here.
func ParseTTL(raw string, defaultSeconds int64) int64 {
	m := ttlPattern.FindStringSubmatch(raw)
	if m == nil {
		return defaultSeconds
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n > maxTTLSeconds {
		return maxTTLSeconds
	}
	unit := ttlUnitSeconds[m[2]]
	if n > maxTTLSeconds/unit {
		return maxTTLSeconds
	}
	seconds := n * unit
	if seconds > maxTTLSeconds {
		return maxTTLSeconds
	}
	return seconds
}
