package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// DirWriter persists exports under a single directory on the local disk.
type DirWriter struct {
	Dir string
}

func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{Dir: dir}
}

func (w *DirWriter) Write(ctx context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	slog.InfoContext(ctx, "Export file written", "path", path, "bytes", len(data))
	return path, nil
}

// CommandSharer hands the written file to an external command (for example
// a script that mails or uploads it). An empty command means the host has
// no share facility at all.
type CommandSharer struct {
	Command string
	Timeout time.Duration
}

func NewCommandSharer(command string, timeout time.Duration) *CommandSharer {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CommandSharer{Command: command, Timeout: timeout}
}

func (s *CommandSharer) Share(ctx context.Context, path string) error {
	if s.Command == "" {
		return ErrShareUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.Command, path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ErrShareUnavailable
		}
		slog.ErrorContext(ctx, "Share command failed",
			"command", s.Command, "path", path, "output", string(out), "error", err)
		return fmt.Errorf("share command: %w", err)
	}

	slog.InfoContext(ctx, "Export shared", "command", s.Command, "path", path)
	return nil
}
