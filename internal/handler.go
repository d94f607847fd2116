package internal

// Handler declares routes on a router.
//
// Example:
//
//	type ContactHandler struct {
//	    relay *contact.Relay
//	}
//
//	func (h *ContactHandler) Routes(r site.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// It receives a Context and returns an error.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect or modify the request, short-circuit processing,
// or wrap the response.
//
// Example:
//
//	func JSONOnly(next site.HandlerFunc) site.HandlerFunc {
//	    return func(c site.Context) error {
//	        if c.Header("Content-Type") != "application/json" {
//	            return site.ErrBadRequest("Invalid JSON payload")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
