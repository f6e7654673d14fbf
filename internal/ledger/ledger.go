// Package ledger defines the ports of the transaction ledger engine.
//
// The engine owns an ordered sequence of transaction records, newest
// inserted first, and derives totals by a full scan on every read. The
// sequence is volatile: it starts empty and is gone when the process ends.
package ledger

import (
	"context"

	"github.com/google/uuid"

	"fintrack/internal/core"
)

// Draft carries caller-validated input for a new transaction. Stores trust
// it: presence and positivity checks happen at the UI layer before
// submission, never inside the engine.
type Draft struct {
	Date        core.Date
	Description string
	Amount      core.Money
	Type        core.TxType
	Category    string
}

type (
	// Recorder creates an immutable record from a draft, assigns its ID
	// and inserts it at the front of the ledger.
	Recorder interface {
		Add(ctx context.Context, d Draft) (core.Transaction, error)
	}

	// Lister returns a read-only snapshot in ledger order, newest first.
	Lister interface {
		List(ctx context.Context) ([]core.Transaction, error)
	}

	// Summarizer recomputes income, expense and balance from the current
	// ledger. Totals are never cached.
	Summarizer interface {
		Totals(ctx context.Context) (core.Totals, error)
	}

	// Counter reports how many records the ledger currently holds.
	Counter interface {
		Count(ctx context.Context) (int, error)
	}

	// Store is the full engine surface consumed by the UI layer.
	Store interface {
		Recorder
		Lister
		Summarizer
		Counter
	}
)

// NewID returns a fresh record identifier. UUIDs comfortably satisfy the
// no-collision-within-one-process requirement.
func NewID() string {
	return uuid.NewString()
}

// Sum folds a snapshot into totals; stores share it so that both backends
// derive the same numbers from the same sequence.
func Sum(items []core.Transaction) core.Totals {
	var t core.Totals
	for _, tx := range items {
		switch tx.Type {
		case core.Income:
			t.Income.Cents += tx.Amount.Cents
		case core.Expense:
			t.Expense.Cents += tx.Amount.Cents
		}
	}
	t.Balance.Cents = t.Income.Cents - t.Expense.Cents
	return t
}
