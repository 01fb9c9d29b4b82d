// Package livestate holds the single-slot cache of the most recently
// processed decision trace, read by the dashboard stream view while
// request handlers keep writing.
package livestate

import (
	"sync/atomic"

	"github.com/mgirardot/partpilot/core/model"
)

// Store is a process-wide single slot. Publish swaps the whole trace
// atomically, so readers never observe a partially written value. No
// history is retained: each publish replaces the previous trace entirely.
type Store struct {
	cur atomic.Pointer[model.DecisionTrace]
}

// NewStore creates an empty store.
func NewStore() *Store { return &Store{} }

// Publish overwrites the current slot. Last write wins; under concurrency
// "latest" means most recently completed publish, not most recently
// arrived request.
func (s *Store) Publish(t model.DecisionTrace) {
	s.cur.Store(&t)
}

// Read returns the most recently published trace. ok is false before the
// first publish.
func (s *Store) Read() (model.DecisionTrace, bool) {
	p := s.cur.Load()
	if p == nil {
		return model.DecisionTrace{}, false
	}
	return *p, true
}
