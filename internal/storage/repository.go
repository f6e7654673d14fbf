// Package storage provides the SQLite-backed ledger store. The default DSN
// is ":memory:", which keeps the ledger volatile like the canonical
// in-memory store while exercising real SQL aggregation.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/ledger"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// A pooled second connection to :memory: would see a different,
	// empty database, so pin the pool to one connection.
	if isMemoryDSN(dsn) {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Add implements ledger.Recorder. The monotonic position column preserves
// insertion order independently of the user-chosen date.
func (r *Repository) Add(ctx context.Context, d ledger.Draft) (core.Transaction, error) {
	tx := core.Transaction{
		ID:          ledger.NewID(),
		Date:        d.Date,
		Description: d.Description,
		Amount:      d.Amount,
		Type:        d.Type,
		Category:    d.Category,
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, tx_date, description, amount_cents, tx_type, category)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Date.ISO(), tx.Description, tx.Amount.Cents, string(tx.Type), tx.Category)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", tx.ID,
		"description", tx.Description,
		"amount_cents", tx.Amount.Cents,
		"tx_type", string(tx.Type),
		"category", tx.Category)

	return tx, nil
}

// List implements ledger.Lister, newest inserted first.
func (r *Repository) List(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tx_date, description, amount_cents, tx_type, category
		 FROM transactions ORDER BY position DESC`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			tx      core.Transaction
			isoDate string
			txType  string
		)
		if err := rows.Scan(&tx.ID, &isoDate, &tx.Description, &tx.Amount.Cents, &txType, &tx.Category); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		parsed, err := time.Parse("2006-01-02", isoDate)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", isoDate, err)
		}
		tx.Date = core.Date{Time: parsed}
		tx.Type = core.TxType(txType)
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// Totals implements ledger.Summarizer with SQL aggregation.
func (r *Repository) Totals(ctx context.Context) (core.Totals, error) {
	var t core.Totals
	err := r.db.QueryRowContext(ctx,
		`SELECT
		   COALESCE(SUM(CASE WHEN tx_type = 'income'  THEN amount_cents ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN tx_type = 'expense' THEN amount_cents ELSE 0 END), 0)
		 FROM transactions`).Scan(&t.Income.Cents, &t.Expense.Cents)
	if err != nil {
		return core.Totals{}, fmt.Errorf("sum transactions: %w", err)
	}
	t.Balance.Cents = t.Income.Cents - t.Expense.Cents
	return t, nil
}

// Count implements ledger.Counter.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
