package events

import (
	"context"
	"sync"
)

// Tally is an EventHandler that counts events by type. It backs the
// process-wide counters served by the stats endpoint.
type Tally struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewTally creates an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int64)}
}

// HandleEvent implements EventHandler.
func (t *Tally) HandleEvent(_ context.Context, event *SessionEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[event.Type]++
	return nil
}

// Snapshot returns a copy of the current counters.
func (t *Tally) Snapshot() map[string]int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]int64, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}
