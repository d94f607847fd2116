package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config holds logger configuration.
// Embed this in the app config for env parsing with caarlos0/env.
type Config struct {
	Sentry SentryConfig
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// New creates a JSON logger on stdout with optional context extractors.
func New(level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(jsonHandler(os.Stdout, level), extractors...))
}

// FromConfig creates the service logger: stdout always, Sentry when a DSN is set.
func FromConfig(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return NewWithSentry(cfg.Sentry, cfg.Level, extractors...)
}

func jsonHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}
