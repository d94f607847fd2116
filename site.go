package site

import (
	"context"
	"io/fs"
	"log/slog"
	"net"
	"time"

	"github.com/ecpw/site/internal"
	"github.com/ecpw/site/pkg/health"
	"github.com/ecpw/site/pkg/logger"
)

// Type aliases re-exported from internal.
type (
	// App orchestrates the application lifecycle.
	App = internal.App

	// Option configures the application.
	Option = internal.Option

	// RunOption configures App.Run.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc.
	Middleware = internal.Middleware

	// ErrorHandler renders errors returned by handlers.
	ErrorHandler = internal.ErrorHandler

	// Router is the route registration surface handed to handlers.
	Router = internal.Router

	// Context is the request context handed to handlers.
	Context = internal.Context

	// HTTPError is an error carrying an HTTP status and a public message.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// ResponseWriter records the status and size of a response.
	ResponseWriter = internal.ResponseWriter

	// ContextExtractor pulls a log attribute from a request context.
	ContextExtractor = logger.ContextExtractor

	// CheckFunc is a readiness probe.
	CheckFunc = health.CheckFunc
)

// New creates a new application with the given options.
// The App is immutable after creation.
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithStaticFiles serves fsys (rooted at subDir) for requests no route matched.
func WithStaticFiles(fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(fsys, subDir)
}

// WithErrorHandler sets the handler for errors returned by handlers.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables /health/live and /health/ready.
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogger creates a JSON logger tagged with a component name.
func WithLogger(component string, level slog.Level, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, level, extractors...)
}

// WithCustomLogger uses the provided logger as is.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// Health options

// WithLivenessPath overrides the liveness endpoint path.
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath overrides the readiness endpoint path.
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessCheck registers a named readiness check.
func WithReadinessCheck(name string, fn CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options

// Logger sets the logger used by the server runtime.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout bounds graceful shutdown.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook runs before the listener opens. An error aborts startup.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook runs after the server stops accepting requests.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets the base context. Cancelling it stops the server.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// OnReady is called with the bound address once the listener is open.
func OnReady(fn func(net.Addr)) RunOption {
	return internal.OnReady(fn)
}

// Errors

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return internal.NewHTTPError(code, message)
}

// WithDetail attaches a client-visible detail string.
func WithDetail(detail string) HTTPErrorOption {
	return internal.WithDetail(detail)
}

// WithRequestID attaches the request ID.
func WithRequestID(id string) HTTPErrorOption {
	return internal.WithRequestID(id)
}

// WithError records the underlying cause.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// ErrBadRequest creates a 400 error.
func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

// ErrNotFound creates a 404 error.
func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

// ErrMethodNotAllowed creates a 405 error.
func ErrMethodNotAllowed(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrMethodNotAllowed(message, opts...)
}

// ErrInternal creates a 500 error.
func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

// ErrBadGateway creates a 502 error.
func ErrBadGateway(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadGateway(message, opts...)
}

// ErrServiceUnavailable creates a 503 error.
func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrServiceUnavailable(message, opts...)
}

// IsHTTPError reports whether err wraps an HTTPError.
func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}

// AsHTTPError returns the HTTPError in err's chain, or nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// ContextValue returns the typed value stored under key, or the zero value.
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}
