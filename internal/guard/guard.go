package guard

import (
	"fmt"
	"sync"
	"time"
)

// Result is the outcome of a quota check, with the values callers are
// entitled to disclose in rate-limit response headers.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Guard enforces per-caller, per-feature quotas against an injected Store.
type Guard struct {
	policies map[Feature]Policy
	store    Store

	// mu serializes the read-increment-write cycle in Check. The Store's own
	// locking protects individual operations, not the cycle, so concurrent
	// requests from one caller would otherwise lose increments.
	mu sync.Mutex

	// now is replaceable in tests so window expiry does not require sleeping.
	now func() time.Time
}

// New creates a Guard over the given store and policy table.
func New(store Store, policies map[Feature]Policy) *Guard {
	return &Guard{
		policies: policies,
		store:    store,
		now:      time.Now,
	}
}

// Policy returns the policy for a feature. The boolean is false for unknown
// features, which callers must treat as a configuration error.
func (g *Guard) Policy(feature Feature) (Policy, bool) {
	p, ok := g.policies[feature]
	return p, ok
}

// Check charges the current request against callerID's quota for feature and
// reports whether it is allowed. The charge happens before the comparison:
// a rejected request still consumes a slot, so hammering a limited endpoint
// never earns extra capacity within the window.
func (g *Guard) Check(feature Feature, callerID string) Result {
	policy, ok := g.policies[feature]
	if !ok {
		// Unknown feature: fail closed with a zero quota.
		return Result{Allowed: false, ResetAt: g.now().Add(Window)}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	key := quotaKey(callerID, feature)

	entry, exists := g.store.Get(key)
	if !exists || now.After(entry.ResetAt) {
		entry = Entry{Count: 0, ResetAt: now.Add(Window)}
	}

	entry.Count++
	g.store.Set(key, entry)

	remaining := policy.MaxRequests - entry.Count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   entry.Count <= policy.MaxRequests,
		Limit:     policy.MaxRequests,
		Remaining: remaining,
		ResetAt:   entry.ResetAt,
	}
}

// quotaKey buckets quotas per caller per feature, so one caller using two
// AI features draws down two independent counters.
func quotaKey(callerID string, feature Feature) string {
	return fmt.Sprintf("%s:%s", callerID, feature)
}
