package memory

import (
	"context"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

func draft(desc string, cents int64, typ core.TxType) ledger.Draft {
	return ledger.Draft{
		Date:        core.NewDate(2024, 3, 15),
		Description: desc,
		Amount:      core.Money{Cents: cents},
		Type:        typ,
		Category:    "Other",
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()

	first, err := s.Add(ctx, draft("first", 100, core.Expense))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := s.Add(ctx, draft("second", 200, core.Income))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest-first order [second, first], got [%s, %s]",
			items[0].Description, items[1].Description)
	}
}

func TestAddDoesNotTouchPriorRecords(t *testing.T) {
	ctx := context.Background()
	s := New()

	a, _ := s.Add(ctx, draft("keep me", 4250, core.Expense))
	if _, err := s.Add(ctx, draft("newer", 100, core.Income)); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, _ := s.List(ctx)
	got := items[1]
	if got.ID != a.ID || got.Description != "keep me" || got.Amount.Cents != 4250 || got.Type != core.Expense {
		t.Fatalf("prior record changed: %+v", got)
	}
}

func TestIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	s := New()
	seen := map[string]struct{}{}
	for i := 0; i < 500; i++ {
		tx, err := s.Add(ctx, draft("x", 1, core.Expense))
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if tx.ID == "" {
			t.Fatalf("empty id at %d", i)
		}
		if _, dup := seen[tx.ID]; dup {
			t.Fatalf("duplicate id %s at %d", tx.ID, i)
		}
		seen[tx.ID] = struct{}{}
	}
}

func TestTotalsRecomputedExactly(t *testing.T) {
	ctx := context.Background()
	s := New()

	tot, err := s.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if tot.Income.Cents != 0 || tot.Expense.Cents != 0 || tot.Balance.Cents != 0 {
		t.Fatalf("empty ledger expected zero totals, got %+v", tot)
	}

	s.Add(ctx, draft("Groceries", 4250, core.Expense))
	s.Add(ctx, draft("Paycheck", 200000, core.Income))
	s.Add(ctx, draft("Coffee", 350, core.Expense))

	tot, _ = s.Totals(ctx)
	if tot.Income.Cents != 200000 {
		t.Fatalf("income expected 200000, got %d", tot.Income.Cents)
	}
	if tot.Expense.Cents != 4600 {
		t.Fatalf("expense expected 4600, got %d", tot.Expense.Cents)
	}
	if tot.Balance.Cents != tot.Income.Cents-tot.Expense.Cents {
		t.Fatalf("balance %d != income-expense %d", tot.Balance.Cents, tot.Income.Cents-tot.Expense.Cents)
	}
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Add(ctx, draft("original", 100, core.Expense))

	items, _ := s.List(ctx)
	items[0].Description = "mutated"

	again, _ := s.List(ctx)
	if again[0].Description != "original" {
		t.Fatalf("ledger mutated through snapshot")
	}
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	s := New()
	for i := 1; i <= 3; i++ {
		s.Add(ctx, draft("x", 1, core.Income))
		n, err := s.Count(ctx)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if n != i {
			t.Fatalf("expected count %d, got %d", i, n)
		}
	}
}
