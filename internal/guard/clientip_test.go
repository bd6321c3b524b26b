package guard

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP_ForwardedForTakesFirstAddress(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/ai/chat", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1, 172.16.0.1")

	if ip := ClientIP(r); ip != "203.0.113.7" {
		t.Errorf("Expected first forwarded address, got %q", ip)
	}
}

func TestClientIP_HeaderPriority(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/ai/chat", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	r.Header.Set("CF-Connecting-IP", "198.51.100.2")
	r.Header.Set("X-Real-IP", "192.0.2.9")

	if ip := ClientIP(r); ip != "203.0.113.7" {
		t.Errorf("Expected X-Forwarded-For to win, got %q", ip)
	}

	r.Header.Del("X-Forwarded-For")
	if ip := ClientIP(r); ip != "198.51.100.2" {
		t.Errorf("Expected CF-Connecting-IP next, got %q", ip)
	}

	r.Header.Del("CF-Connecting-IP")
	if ip := ClientIP(r); ip != "192.0.2.9" {
		t.Errorf("Expected X-Real-IP last, got %q", ip)
	}
}

func TestClientIP_NoSignalFallsBackToUnknown(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/ai/chat", nil)

	if ip := ClientIP(r); ip != "unknown" {
		t.Errorf("Expected \"unknown\" without proxy headers, got %q", ip)
	}
}

func TestClientIP_EmptyForwardedEntries(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/ai/chat", nil)
	r.Header.Set("X-Forwarded-For", " , 10.0.0.1")
	r.Header.Set("X-Real-IP", "192.0.2.9")

	// A blank first hop is no signal; fall through to the next header.
	if ip := ClientIP(r); ip != "192.0.2.9" {
		t.Errorf("Expected fall-through past blank forwarded entry, got %q", ip)
	}
}
