// Package logger builds the service's structured loggers on top of log/slog.
//
// Every logger writes JSON to stdout. Context extractors add request-scoped
// attributes (the request ID set by middlewares.RequestID) to each record:
//
//	log := logger.New(slog.LevelInfo, middlewares.RequestIDExtractor())
//	log.ErrorContext(ctx, "resend rejected the request", slog.Int("status", 422))
//	// {"level":"ERROR","msg":"resend rejected the request","status":422,"request_id":"..."}
//
// # Sentry
//
// FromConfig and NewWithSentry additionally forward warnings and errors to
// Sentry when SENTRY_DSN is set. Errors become issues, warnings are kept as
// searchable logs. Without a DSN the logger silently degrades to stdout only,
// so the same code path runs locally and in production. Register FlushSentry
// as a shutdown hook so buffered events are sent before the process exits.
//
// # Tests
//
// NewNope discards output. NewWriter writes debug-level JSON to any writer.
package logger
