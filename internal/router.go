package internal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is what handlers use to declare routes.
type Router interface {
	// GET registers h for GET requests on path.
	GET(path string, h HandlerFunc, mw ...Middleware)

	// POST registers h for POST requests on path.
	POST(path string, h HandlerFunc, mw ...Middleware)
}

// routeRegistrar registers handlers on the app's chi router.
type routeRegistrar struct {
	mux chi.Router
	app *App
}

func (r *routeRegistrar) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.mux.Get(path, r.app.wrapHandler(chain(h, mw)))
}

func (r *routeRegistrar) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.mux.Post(path, r.app.wrapHandler(chain(h, mw)))
}

// chain wraps h so that mw[0] runs first.
func chain(h HandlerFunc, mw []Middleware) HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// adaptMiddleware turns a Middleware into chi middleware. The rest of the
// chain runs inside next, so its errors are rendered by the route's own
// wrapper and the middleware only sees errors it produces itself.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := newContext(w, r, a.logger)
			err := mw(func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			})(c)
			if err != nil {
				a.handleError(c, err)
			}
		})
	}
}
