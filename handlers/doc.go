// Package handlers contains the HTTP handlers of the site backend and the
// JSON error rendering shared by all routes.
//
// The contact endpoint is POST /api/contact:
//
//	app := site.New(
//	    site.WithErrorHandler(handlers.ErrorHandler),
//	    site.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
//	    site.WithHandlers(handlers.NewContact(relay)),
//	)
package handlers
