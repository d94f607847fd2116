package logger

import (
	"io"
	"log/slog"
)

// NewNope returns a logger that discards everything.
// Handlers and tests use it when no logger is injected.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewWriter returns a JSON logger writing to w at debug level.
// Useful in tests that assert on log output.
func NewWriter(w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(jsonHandler(w, slog.LevelDebug), extractors...))
}
