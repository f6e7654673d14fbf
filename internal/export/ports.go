package export

import (
	"context"
	"errors"
)

// ErrShareUnavailable reports that no share facility exists on this host.
// It is a distinct condition, not a failure of the export itself.
var ErrShareUnavailable = errors.New("sharing unavailable")

type (
	// FileWriter persists a text blob under a name and returns the full
	// path of the written file.
	FileWriter interface {
		Write(ctx context.Context, name string, data []byte) (path string, err error)
	}

	// Sharer offers a written file through the host's share facility.
	// Implementations return ErrShareUnavailable when the capability is
	// absent, anything else when the share attempt failed.
	Sharer interface {
		Share(ctx context.Context, path string) error
	}
)
