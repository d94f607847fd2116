// Package internal provides the core HTTP types and runtime for the site server.
//
// This package is internal and should not be used directly. Import "github.com/ecpw/site"
// instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates HTTP routing, middleware, health endpoints and graceful shutdown
//   - Context: Request/response access, JSON helpers and request-scoped logging
//   - Router: Interface handlers use to declare GET and POST routes
//   - Handler: Interface implemented by types that declare routes on a router
//   - HandlerFunc: Signature for individual route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Turns handler errors into responses
//   - HTTPError: Status code, user-facing message and optional detail
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any function
// that expects a standard library context:
//
//	func (h *Contact) submit(c internal.Context) error {
//	    if err := h.relay.Send(c, sub); err != nil {
//	        return err
//	    }
//	    return c.JSON(http.StatusOK, resp)
//	}
//
// # Error Handling
//
// Errors returned from handlers and middleware reach the ErrorHandler unless a
// response has already been written. Handlers return *HTTPError values for
// expected failures; anything else is treated as an internal error by the
// error handler the application installs.
//
// # Static Files
//
// WithStaticFiles serves a directory for GET and HEAD requests that match no
// route. Registered routes, including their 405 responses, always win.
//
// # Server Runtime
//
//	err := app.Run(":8080",
//	    internal.Logger(log),
//	    internal.ShutdownHook(flush),
//	)
//
// Run listens, serves until SIGINT or SIGTERM, then shuts the server down and
// runs shutdown hooks within the shutdown timeout.
package internal
