package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

type (
	// TxType tags a transaction as income or expense. The sign of a
	// transaction is carried here; stored amounts are always positive.
	TxType string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is a single financial event. Records are immutable once
	// created; there is no update or delete operation.
	Transaction struct {
		ID          string
		Date        Date
		Description string
		Amount      Money
		Type        TxType
		// Category is free-form at this layer. The UI offers a closed
		// list but the ledger accepts any string.
		Category string
	}

	// Totals holds the derived sums recomputed from the ledger on demand.
	Totals struct {
		Income  Money
		Expense Money
		Balance Money
	}
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrEmptyDescription = errors.New("empty description")
)

func (t TxType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// ISO renders the date as YYYY-MM-DD, the fixed form used by the CSV export.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

// NewDate creates a Date from year, month and day at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks the fields a caller must reject before submission.
// The ledger itself trusts its input and never re-validates.
func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	return t.Type.Validate()
}
