package guard

import (
	"sync"
	"time"
)

// Entry is one caller's quota counter for the current window.
// Count is never decremented; a stale entry is replaced wholesale when the
// window elapses.
type Entry struct {
	Count   int
	ResetAt time.Time
}

// Store holds quota entries keyed by caller+feature. Implementations must be
// safe for concurrent use; the in-process MemoryStore suffices for a
// single-instance deployment, while a multi-instance deployment needs a
// shared external store to keep quotas correct.
type Store interface {
	// Get returns the entry for key, or ok=false if none exists.
	Get(key string) (Entry, bool)
	// Set stores the entry for key, replacing any existing one.
	Set(key string, e Entry)
	// Sweep removes entries that have been stale for longer than a full
	// window relative to now. Sweeping is hygiene, not correctness: Check
	// treats an expired entry the same as a missing one.
	Sweep(now time.Time)
}

// MemoryStore is a mutex-guarded in-memory Store. State is process-lifetime
// only and is not shared across instances.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
	}
}

// Get returns the entry for key.
func (s *MemoryStore) Get(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e, ok
}

// Set stores the entry for key.
func (s *MemoryStore) Set(key string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
}

// Sweep drops entries whose window ended more than a full window before now.
func (s *MemoryStore) Sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, e := range s.entries {
		if now.After(e.ResetAt.Add(Window)) {
			delete(s.entries, key)
		}
	}
}

// Len reports the number of live entries. Used by tests and debug endpoints.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartSweeping launches a background goroutine that sweeps every interval.
// Call StopSweeping to terminate it.
func (s *MemoryStore) StartSweeping(interval time.Duration) {
	if interval <= 0 {
		return
	}
	s.sweepTicker = time.NewTicker(interval)
	s.sweepStop = make(chan struct{})
	go func() {
		for {
			select {
			case <-s.sweepTicker.C:
				s.Sweep(time.Now())
			case <-s.sweepStop:
				return
			}
		}
	}()
}

// StopSweeping stops the background sweep goroutine.
func (s *MemoryStore) StopSweeping() {
	if s.sweepTicker != nil {
		s.sweepTicker.Stop()
	}
	if s.sweepStop != nil {
		close(s.sweepStop)
		s.sweepStop = nil
	}
}
