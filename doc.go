// Package site is the HTTP runtime for the ECPW website backend.
//
// It wraps a chi router with a small handler model: handlers return errors,
// a single ErrorHandler renders them, and middleware composes around
// HandlerFunc values.
//
// # Quick Start
//
//	app := site.New(
//	    site.WithCustomLogger(log),
//	    site.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	    ),
//	    site.WithErrorHandler(handlers.ErrorHandler),
//	    site.WithHandlers(handlers.NewContact(relay)),
//	)
//
//	if err := app.Run(":8080", site.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	type ContactHandler struct {
//	    relay *contact.Relay
//	}
//
//	func (h *ContactHandler) Routes(r site.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
//
// # Errors
//
// Returning an [HTTPError] from a handler selects the response status and
// message. Any other error is treated as an internal failure by the error
// handler the application installs.
//
//	if errors.Is(err, contact.ErrMissingFields) {
//	    return site.ErrBadRequest("Name, email, and message are required")
//	}
//
// # Static files
//
// [WithStaticFiles] serves a directory for requests no route matched, so
// API routes keep their 405 responses for unsupported methods.
//
// # Health checks
//
// [WithHealthChecks] mounts /health/live and /health/ready. Readiness runs
// every registered check and answers 503 when one fails.
package site
