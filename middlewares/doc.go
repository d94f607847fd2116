// Package middlewares provides HTTP middleware for the site server.
//
// # Request ID
//
// RequestID assigns an ID to each request. A short printable upstream
// X-Request-ID is reused, otherwise a UUID is generated. Pair it with
// RequestIDExtractor so every log line carries request_id:
//
//	app := site.New(
//	    site.WithCustomLogger(logger.New(slog.LevelInfo, middlewares.RequestIDExtractor())),
//	    site.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Request Logger
//
// RequestLogger writes one line per request with status and duration.
//
// # Recover
//
// Recover catches panics and converts them to a PanicError for the global
// ErrorHandler.
//
// # Timeout
//
// Timeout bounds handler execution and returns a TimeoutError. The handler
// goroutine keeps running; use GetTimeoutContext for cancellable work.
//
// # CORS
//
// CORS answers preflight requests from the configured origins. With no
// origins configured it is a no-op:
//
//	middlewares.CORS(middlewares.WithAllowOrigins(middlewares.ParseOrigins(cfg.CORSOrigins)...))
//
// # Recommended Middleware Order
//
//	site.WithMiddleware(
//	    middlewares.RequestID(),             // ID for all subsequent logging
//	    middlewares.RequestLogger(),         // sees the final status
//	    middlewares.Recover(),               // catches panics from everything below
//	    middlewares.CORS(opts...),           // preflight before the handler
//	    middlewares.Timeout(30*time.Second), // innermost
//	)
package middlewares
