package export

import (
	"strings"
	"testing"

	"fintrack/internal/core"
)

func TestRenderCSVEmpty(t *testing.T) {
	got := RenderCSV(nil)
	if got != "Date,Description,Amount,Type,Category\n" {
		t.Fatalf("empty ledger expected header line only, got %q", got)
	}
}

func TestRenderCSVRoundTrip(t *testing.T) {
	// Ledger order is newest first: B was created after A.
	items := []core.Transaction{
		{
			ID:          "b",
			Date:        core.NewDate(2024, 1, 1),
			Description: "Paycheck",
			Amount:      core.Money{Cents: 200000},
			Type:        core.Income,
			Category:    "Salary",
		},
		{
			ID:          "a",
			Date:        core.NewDate(2024, 3, 15),
			Description: "Groceries",
			Amount:      core.Money{Cents: 4250},
			Type:        core.Expense,
			Category:    "Food",
		},
	}

	want := "Date,Description,Amount,Type,Category\n" +
		"2024-01-01,\"Paycheck\",2000,income,Salary\n" +
		"2024-03-15,\"Groceries\",42.5,expense,Food\n"

	if got := RenderCSV(items); got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderCSVLineCountMatchesLedger(t *testing.T) {
	var items []core.Transaction
	for i := 0; i < 7; i++ {
		items = append(items, core.Transaction{
			Date:        core.NewDate(2024, 6, 1+i),
			Description: "item",
			Amount:      core.Money{Cents: 100},
			Type:        core.Expense,
			Category:    "Other",
		})
	}
	got := RenderCSV(items)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 1+len(items) {
		t.Fatalf("expected header + %d lines, got %d", len(items), len(lines))
	}
	if lines[1] != "2024-06-01,\"item\",1,expense,Other" {
		t.Fatalf("unexpected first data line %q", lines[1])
	}
}

func TestRenderCSVDoesNotEscape(t *testing.T) {
	items := []core.Transaction{{
		Date:        core.NewDate(2024, 2, 2),
		Description: `dinner, "La Pergola"`,
		Amount:      core.Money{Cents: 12000},
		Type:        core.Expense,
		Category:    "Food",
	}}

	got := RenderCSV(items)
	want := "Date,Description,Amount,Type,Category\n" +
		"2024-02-02,\"dinner, \"La Pergola\"\",120,expense,Food\n"
	if got != want {
		t.Fatalf("embedded quotes and commas must pass through verbatim:\n%q\nwant\n%q", got, want)
	}
}
