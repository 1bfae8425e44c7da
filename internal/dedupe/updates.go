// ABOUTME: Thread-safe TTL tracker for already-processed update IDs.
// ABOUTME: Size-bounded; oldest entries are evicted first.

package dedupe

import (
	"sync"
	"time"
)

// Tracker remembers which update IDs have been handled within a TTL window.
// It is safe for concurrent use from the per-update goroutines.
type Tracker struct {
	mu      sync.Mutex
	seen    map[int64]time.Time
	order   []int64
	ttl     time.Duration
	maxSize int
}

// NewTracker creates a tracker holding at most maxSize IDs for ttl each.
func NewTracker(ttl time.Duration, maxSize int) *Tracker {
	if maxSize <= 0 {
		maxSize = 1024
	}
	return &Tracker{
		seen:    make(map[int64]time.Time),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// CheckAndMark atomically reports whether id was already seen within the
// TTL, marking it as seen if it was not. Atomicity matters: two goroutines
// racing on the same redelivered update must not both proceed.
func (t *Tracker) CheckAndMark(id int64) bool {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if ts, ok := t.seen[id]; ok && now.Sub(ts) < t.ttl {
		return true
	}

	if _, exists := t.seen[id]; !exists {
		t.order = append(t.order, id)
	}
	t.seen[id] = now
	t.compactLocked(now)
	return false
}

// compactLocked drops expired entries and enforces the size bound.
func (t *Tracker) compactLocked(now time.Time) {
	kept := t.order[:0]
	for _, id := range t.order {
		ts, ok := t.seen[id]
		if !ok {
			continue
		}
		if now.Sub(ts) >= t.ttl {
			delete(t.seen, id)
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept

	for len(t.order) > t.maxSize {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.seen, oldest)
	}
}
