package resend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ecpw/site/pkg/sanitizer"
)

var (
	// ErrTimeout indicates the provider did not answer within Config.Timeout.
	ErrTimeout = errors.New("resend: request timed out")

	// ErrInvalidBaseURL indicates Config.BaseURL could not be parsed.
	ErrInvalidBaseURL = errors.New("resend: invalid base url")
)

// ProviderError is returned when Resend answers with a non-2xx status.
type ProviderError struct {
	StatusCode int
	Body       string // Raw response body
	Payload    any    // Body decoded as JSON, nil when it is not valid JSON
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("resend: status %d: %s", e.StatusCode, e.Message())
}

// Message returns a human-readable description of the failure: the
// "message" or "error" field of a JSON body, the JSON body itself, or the
// raw text. Markup is removed only from bodies that are HTML documents.
func (e *ProviderError) Message() string {
	if obj, ok := e.Payload.(map[string]any); ok {
		for _, key := range []string{"message", "error"} {
			if msg := fieldText(obj[key]); msg != "" {
				return msg
			}
		}
	}

	if str, ok := e.Payload.(string); ok && strings.TrimSpace(str) != "" {
		return str
	}

	if e.Payload != nil {
		if b, err := json.Marshal(e.Payload); err == nil {
			return string(b)
		}
	}

	body := strings.TrimSpace(e.Body)
	if strings.HasPrefix(body, "<") {
		body = sanitizer.StripHTML(body)
	}
	if body != "" {
		return body
	}
	return http.StatusText(e.StatusCode)
}

// fieldText renders a JSON field value, treating falsy values as absent.
func fieldText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
	case float64:
		if val == 0 {
			return ""
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// AsProviderError extracts a ProviderError from an error chain.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsTimeout reports whether err is a provider timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
