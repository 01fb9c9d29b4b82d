package inventory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mgirardot/partpilot/core/model"
)

var (
	// ErrNotFound is returned when a part is not tracked by the ledger.
	ErrNotFound = errors.New("part not found")
	// ErrInvalidQuantity is returned when a stock overwrite is negative.
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)

// Ledger is the authoritative record of spare-part stock counts. All
// mutation goes through TryReserve and Set; stock never goes negative.
type Ledger interface {
	Get(part model.PartID) (int, error)
	TryReserve(part model.PartID) (remaining int, ok bool)
	Set(part model.PartID, quantity int) error
	Snapshot() map[model.PartID]int
}

// MemoryLedger keeps stock counts in memory for the lifetime of the
// process. Entries are created from the seed at construction and are never
// deleted afterwards, only mutated in place.
type MemoryLedger struct {
	mu    sync.RWMutex
	stock map[model.PartID]int
}

// NewMemoryLedger creates a ledger holding a copy of the seed counts.
func NewMemoryLedger(seed map[model.PartID]int) *MemoryLedger {
	stock := make(map[model.PartID]int, len(seed))
	for part, qty := range seed {
		stock[part] = qty
	}
	return &MemoryLedger{stock: stock}
}

// Get returns the current stock count for the part.
func (l *MemoryLedger) Get(part model.PartID) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	qty, ok := l.stock[part]
	if !ok {
		return 0, fmt.Errorf("%s: %w", part, ErrNotFound)
	}
	return qty, nil
}

// TryReserve atomically checks stock and decrements it by one. The check
// and the decrement happen in a single critical section, so two callers
// competing for the last unit can never both succeed. The returned
// remaining count is the post-decrement value observed inside the same
// critical section.
func (l *MemoryLedger) TryReserve(part model.PartID) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	qty, ok := l.stock[part]
	if !ok || qty <= 0 {
		return 0, false
	}
	qty--
	l.stock[part] = qty
	return qty, true
}

// Set overwrites the stock count for a known part. Unknown parts are
// rejected rather than created.
func (l *MemoryLedger) Set(part model.PartID, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("set %s to %d: %w", part, quantity, ErrInvalidQuantity)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.stock[part]; !ok {
		return fmt.Errorf("%s: %w", part, ErrNotFound)
	}
	l.stock[part] = quantity
	return nil
}

// Snapshot returns a point-in-time copy of all stock counts. The copy is
// taken under the lock, so it never mixes pre- and post-mutation values of
// a concurrent reservation.
func (l *MemoryLedger) Snapshot() map[model.PartID]int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snap := make(map[model.PartID]int, len(l.stock))
	for part, qty := range l.stock {
		snap[part] = qty
	}
	return snap
}
