// Package memory holds the canonical in-memory ledger store.
package memory

import (
	"context"
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

// Store keeps the transaction sequence in process memory, newest first.
// The mutex is there because the HTTP layer serves requests concurrently;
// the ledger itself has a single logical owner.
type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

func New() *Store {
	return &Store{}
}

// Add builds the record, assigns its ID and prepends it to the sequence.
// It cannot fail on well-typed input.
func (s *Store) Add(_ context.Context, d ledger.Draft) (core.Transaction, error) {
	tx := core.Transaction{
		ID:          ledger.NewID(),
		Date:        d.Date,
		Description: d.Description,
		Amount:      d.Amount,
		Type:        d.Type,
		Category:    d.Category,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]core.Transaction{tx}, s.items...)
	return tx, nil
}

// List returns a copy of the sequence so callers cannot mutate the ledger.
func (s *Store) List(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Totals recomputes the derived sums with a full scan.
func (s *Store) Totals(_ context.Context) (core.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ledger.Sum(s.items), nil
}

func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items), nil
}
