package export

import (
	"context"
	"fmt"

	"fintrack/internal/ledger"
)

// Service produces the CSV text for the current ledger and, for the share
// flow, hands it to the file-write and share collaborators. Its contract
// ends at the collaborators: no retries, no partial-state cleanup beyond
// abandoning the in-flight string.
type Service struct {
	lister   ledger.Lister
	files    FileWriter
	sharer   Sharer
	filename string
}

func NewService(lister ledger.Lister, files FileWriter, sharer Sharer, filename string) *Service {
	return &Service{
		lister:   lister,
		files:    files,
		sharer:   sharer,
		filename: filename,
	}
}

// Filename returns the name exports are written and downloaded under.
func (s *Service) Filename() string {
	return s.filename
}

// CSV renders the whole ledger in its current order. An empty ledger
// yields the header line alone; callers are expected to short-circuit
// before that, but the engine does not refuse.
func (s *Service) CSV(ctx context.Context) (string, error) {
	items, err := s.lister.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list transactions: %w", err)
	}
	return RenderCSV(items), nil
}

// Share writes the CSV to disk and invokes the share facility. It returns
// ErrShareUnavailable (wrapped) when the capability is absent, any other
// error when writing or sharing failed.
func (s *Service) Share(ctx context.Context) error {
	csv, err := s.CSV(ctx)
	if err != nil {
		return err
	}

	path, err := s.files.Write(ctx, s.filename, []byte(csv))
	if err != nil {
		return fmt.Errorf("export write: %w", err)
	}

	if err := s.sharer.Share(ctx, path); err != nil {
		return fmt.Errorf("export share: %w", err)
	}
	return nil
}
