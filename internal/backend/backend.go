// Package backend selects and builds the ledger store implementation.
package backend

import (
	"fmt"
	"log/slog"

	"fintrack/internal/ledger"
	"fintrack/internal/ledger/memory"
	"fintrack/internal/storage"
)

// Type names a store implementation.
type Type string

const (
	Memory Type = "memory"
	SQLite Type = "sqlite"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case Memory, SQLite:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result bundles the store with its optional cleanup.
type Result struct {
	Store   ledger.Store
	Cleanup CleanupFunc
}

// Config holds what the factory needs to build a store.
type Config struct {
	Type      Type
	SQLiteDSN string
}

// New builds the configured ledger store.
func New(cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case SQLite:
		repo, err := storage.NewRepository(cfg.SQLiteDSN)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized sqlite ledger store", "dsn", cfg.SQLiteDSN)
		return &Result{Store: repo, Cleanup: repo.Close}, nil
	default:
		logger.Info("Initialized in-memory ledger store")
		return &Result{Store: memory.New()}, nil
	}
}
