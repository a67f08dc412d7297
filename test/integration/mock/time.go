package mock

import (
	"sync"
	"time"
)

// Time is a settable clock. It stays frozen at the configured instant so
// filenames and periods are deterministic within a scenario.
type Time struct {
	mu      sync.RWMutex
	current time.Time
}

func NewTime() *Time {
	return &Time{current: time.Now().UTC()}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}
