package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ecpw/site"
	"github.com/ecpw/site/middlewares"
)

// errorResponse is the JSON body of every error response.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler renders handler errors as {"error": ..., "details": ...}.
// HTTPError selects the status and public text. Anything else, including
// recovered panics and timeouts, is a 500 whose cause is only logged.
func ErrorHandler(c site.Context, err error) error {
	if c.Written() {
		c.LogError("error after response was written", slog.Any("error", err))
		return nil
	}

	code, resp := http.StatusInternalServerError, errorResponse{Error: msgInternal}
	if httpErr := site.AsHTTPError(err); httpErr != nil {
		code = httpErr.Code
		resp = errorResponse{Error: httpErr.Message, Details: httpErr.Detail}
	}

	attrs := []any{
		slog.Int("status", code),
		slog.String("request_id", middlewares.GetRequestID(c)),
		slog.Any("error", err),
	}
	if code >= http.StatusInternalServerError {
		c.LogError("request failed", attrs...)
	} else {
		c.LogWarn("request rejected", attrs...)
	}

	return c.JSON(code, resp)
}

// MethodNotAllowed answers 405 for a known path with an unsupported method.
func MethodNotAllowed(c site.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, errorResponse{Error: msgMethodNotAllowed})
}

// NotFound answers 404 for unknown paths.
func NotFound(c site.Context) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: msgNotFound})
}
