package presence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move time forward deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }
func (c *fakeClock) read() time.Time         { return c.t }

func newTestTracker() (*Tracker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	tr := NewTracker(DefaultTTL)
	tr.now = clock.read
	return tr, clock
}

func TestHeartbeatWithinTTLIsActive(t *testing.T) {
	tr, clock := newTestTracker()
	user := uuid.New()

	start := tr.Heartbeat(user)
	clock.advance(299 * time.Second)

	statuses := tr.Statuses()
	require.Contains(t, statuses, user)
	assert.True(t, statuses[user].Active)
	assert.Equal(t, start, statuses[user].LastSeen)
}

func TestExpiredEntryReportedOnceThenEvicted(t *testing.T) {
	tr, clock := newTestTracker()
	user := uuid.New()

	start := tr.Heartbeat(user)
	clock.advance(301 * time.Second)

	// The sweeping call still reports the entry, with the pre-eviction
	// last seen time.
	statuses := tr.Statuses()
	require.Contains(t, statuses, user)
	assert.False(t, statuses[user].Active)
	assert.Equal(t, start, statuses[user].LastSeen)

	// After the sweep the entry is gone.
	assert.NotContains(t, tr.Statuses(), user)
	_, known := tr.Get(user)
	assert.False(t, known)
}

func TestLogoutRemovesImmediately(t *testing.T) {
	tr, _ := newTestTracker()
	user := uuid.New()

	tr.Heartbeat(user)
	tr.Logout(user)

	assert.NotContains(t, tr.Statuses(), user)
}

func TestHeartbeatRefreshesExpiry(t *testing.T) {
	tr, clock := newTestTracker()
	user := uuid.New()

	tr.Heartbeat(user)
	clock.advance(200 * time.Second)
	second := tr.Heartbeat(user)
	clock.advance(200 * time.Second)

	// 400s after the first beat but only 200s after the second.
	statuses := tr.Statuses()
	require.Contains(t, statuses, user)
	assert.True(t, statuses[user].Active)
	assert.Equal(t, second, statuses[user].LastSeen)
}

func TestStatusesCoversAllTrackedUsers(t *testing.T) {
	tr, clock := newTestTracker()
	fresh, stale := uuid.New(), uuid.New()

	tr.Heartbeat(stale)
	clock.advance(400 * time.Second)
	tr.Heartbeat(fresh)

	statuses := tr.Statuses()
	assert.Len(t, statuses, 2)
	assert.True(t, statuses[fresh].Active)
	assert.False(t, statuses[stale].Active)
}
