package presence

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a user counts as active after their last heartbeat.
const DefaultTTL = 300 * time.Second

// Status is one user's liveness as reported by a single Statuses call.
type Status struct {
	Active   bool
	LastSeen time.Time
}

// Tracker is the process-wide heartbeat store. It is purely in-memory:
// a restart loses all entries, and multiple instances do not share state.
// Presence is advisory, not authoritative.
type Tracker struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	lastSeen map[uuid.UUID]time.Time
}

func NewTracker(ttl time.Duration) *Tracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tracker{
		ttl:      ttl,
		now:      time.Now,
		lastSeen: make(map[uuid.UUID]time.Time),
	}
}

// Heartbeat records activity for the user and returns the stored timestamp.
func (t *Tracker) Heartbeat(userID uuid.UUID) time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	t.lastSeen[userID] = now
	return now
}

// Logout removes the user immediately, independent of the TTL sweep.
func (t *Tracker) Logout(userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.lastSeen, userID)
}

// Statuses sweeps expired entries and returns the liveness of every tracked
// user. Entries that expire during this call are still reported once, with
// Active=false and the last seen time they had before eviction; later calls
// will not know them.
func (t *Tracker) Statuses() map[uuid.UUID]Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	result := make(map[uuid.UUID]Status, len(t.lastSeen))
	for id, seen := range t.lastSeen {
		if now.Sub(seen) > t.ttl {
			result[id] = Status{Active: false, LastSeen: seen}
			delete(t.lastSeen, id)
			continue
		}
		result[id] = Status{Active: true, LastSeen: seen}
	}
	return result
}

// Get returns one user's status without sweeping.
func (t *Tracker) Get(userID uuid.UUID) (Status, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	seen, ok := t.lastSeen[userID]
	if !ok {
		return Status{}, false
	}
	return Status{Active: t.now().Sub(seen) <= t.ttl, LastSeen: seen}, true
}
