package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/ecpw/site/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that enforces a request timeout.
// If the handler does not complete within the timeout, a TimeoutError is returned
// to be handled by the global ErrorHandler.
//
// The handler goroutine keeps running after a timeout. Handlers should use
// GetTimeoutContext for cancellable work. A panic in the handler is re-raised
// on the calling goroutine so that Recover, installed before Timeout, still
// sees it.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			c.Set(timeoutContextKey{}, ctx)

			type result struct {
				err   error
				panic any
			}
			done := make(chan result, 1)
			go func() {
				defer func() {
					if p := recover(); p != nil {
						done <- result{panic: p}
					}
				}()
				done <- result{err: next(c)}
			}()

			select {
			case res := <-done:
				if res.panic != nil {
					panic(res.panic)
				}
				return res.err
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					c.LogWarn("request timeout", "timeout", timeout.String())
					return &TimeoutError{Duration: timeout}
				}
				return ctx.Err()
			}
		}
	}
}

// timeoutContextKey is used to store the timeout context.
type timeoutContextKey struct{}

// GetTimeoutContext retrieves the timeout context if available.
// This allows handlers to check for cancellation via ctx.Done().
func GetTimeoutContext(c internal.Context) context.Context {
	if v, ok := c.Get(timeoutContextKey{}).(context.Context); ok {
		return v
	}
	return c.Context()
}
