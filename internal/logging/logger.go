// Where: cli/internal/logging/logger.go
// What: Diagnostic logger construction.
// Why: Keep stdout for status lines and send diagnostics to stderr.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text slog.Logger writing to w. Only warnings and errors are
// emitted unless verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return New(io.Discard, false)
}
