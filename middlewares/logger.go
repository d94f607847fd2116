package middlewares

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ecpw/site/internal"
)

// statusWriter is implemented by internal.ResponseWriter.
type statusWriter interface {
	Status() int
	Size() int64
}

// RequestLogger returns middleware that logs one line per request with
// method, path, status, size and duration. Health probes are logged at
// debug level, server errors at error level.
func RequestLogger() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status, size := http.StatusOK, int64(0)
			if sw, ok := c.Response().(statusWriter); ok {
				status, size = sw.Status(), sw.Size()
			}
			if httpErr := internal.AsHTTPError(err); httpErr != nil {
				status = httpErr.Code
			} else if err != nil {
				status = http.StatusInternalServerError
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Int64("size", size),
				slog.Duration("duration", time.Since(start)),
			}

			switch {
			case status >= http.StatusInternalServerError:
				c.LogError("request", attrs...)
			case strings.HasPrefix(c.Request().URL.Path, "/health/"):
				c.LogDebug("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}

			return err
		}
	}
}
