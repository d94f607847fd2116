package internal

import (
	"errors"
	"net/http"
)

// HTTPError represents an HTTP error with all data needed for rendering.
// It implements the error interface and provides structured data for
// error handlers to render a JSON error body.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to users).
	Err error

	// Message is the user-facing error message.
	Message string

	// Detail is an optional extended description shown to the client.
	Detail string

	// RequestID is the request tracking ID.
	RequestID string

	// Code is the HTTP status code (e.g., 404, 500).
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

func (e *HTTPError) StatusText() string {
	return http.StatusText(e.Code)
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

func WithDetail(detail string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Detail = detail
	}
}

func WithRequestID(id string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.RequestID = id
	}
}

func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Err = err
	}
}

// Convenience constructors for common HTTP errors.

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, opts)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, opts)
}

func ErrMethodNotAllowed(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed, message, opts)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, message, opts)
}

func ErrBadGateway(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusBadGateway, message, opts)
}

func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusServiceUnavailable, message, opts)
}

func newHTTPError(code int, message string, opts []HTTPErrorOption) *HTTPError {
	e := NewHTTPError(code, message)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Helper functions for error inspection.

func IsHTTPError(err error) bool {
	return AsHTTPError(err) != nil
}

// AsHTTPError extracts the HTTPError from an error chain if present.
// Returns nil if the chain holds no HTTPError.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}
