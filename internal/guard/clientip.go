package guard

import (
	"net/http"
	"strings"
)

// ClientIP extracts the caller identifier from request headers.
// Forwarding headers are checked in priority order: X-Forwarded-For (first
// address in the comma-separated chain), then the single-hop proxy headers
// set by CDNs and reverse proxies. The result is used purely as a quota
// bucketing key and is never validated as a real network address.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}

	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	// No proxy signal at all. Callers behind the same misconfigured proxy
	// share one bucket, which fails toward stricter limiting.
	return "unknown"
}
