package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ecpw/site/internal"
)

// DefaultCORSMaxAge is the default preflight cache duration.
const DefaultCORSMaxAge = 12 * time.Hour

// DefaultCORSConfig allows a browser on another origin to post a form.
var DefaultCORSConfig = CORSConfig{
	AllowMethods: []string{http.MethodPost, http.MethodOptions},
	AllowHeaders: []string{"Content-Type", "Accept", "X-Request-ID"},
	MaxAge:       DefaultCORSMaxAge,
}

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// AllowOrigins lists allowed origins, e.g. "https://ecpw.in".
	// "*" allows any origin. An empty list disables CORS headers entirely.
	AllowOrigins []string

	// AllowMethods specifies the allowed HTTP methods.
	AllowMethods []string

	// AllowHeaders specifies the allowed request headers.
	AllowHeaders []string

	// ExposeHeaders specifies headers exposed to the client.
	ExposeHeaders []string

	// MaxAge specifies how long preflight responses can be cached.
	MaxAge time.Duration
}

// CORSOption configures CORSConfig.
type CORSOption func(*CORSConfig)

// WithAllowOrigins sets the allowed origins.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowOrigins = origins
	}
}

// WithAllowMethods sets the allowed HTTP methods.
func WithAllowMethods(methods ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowMethods = methods
	}
}

// WithAllowHeaders sets the allowed request headers.
func WithAllowHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowHeaders = headers
	}
}

// WithExposeHeaders sets the headers exposed to the client.
func WithExposeHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.ExposeHeaders = headers
	}
}

// WithMaxAge sets the preflight cache duration.
func WithMaxAge(duration time.Duration) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.MaxAge = duration
	}
}

// ParseOrigins splits a comma-separated origin list, dropping blanks and
// trailing slashes.
func ParseOrigins(s string) []string {
	var origins []string
	for o := range strings.SplitSeq(s, ",") {
		if o = normalizeOrigin(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func normalizeOrigin(o string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(o), "/"))
}

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// It answers preflight (OPTIONS) requests from allowed origins and adds CORS
// headers to their other responses. Requests from other origins pass through
// untouched and are blocked by the browser.
func CORS(opts ...CORSOption) internal.Middleware {
	cfg := &CORSConfig{
		AllowMethods: DefaultCORSConfig.AllowMethods,
		AllowHeaders: DefaultCORSConfig.AllowHeaders,
		MaxAge:       DefaultCORSConfig.MaxAge,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	allowed := make([]string, 0, len(cfg.AllowOrigins))
	for _, o := range cfg.AllowOrigins {
		if o = normalizeOrigin(o); o != "" {
			allowed = append(allowed, o)
		}
	}
	hasWildcard := slices.Contains(allowed, "*")

	// Pre-compute joined strings for headers
	allowMethodsStr := strings.Join(cfg.AllowMethods, ", ")
	allowHeadersStr := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeadersStr := strings.Join(cfg.ExposeHeaders, ", ")
	maxAgeStr := strconv.Itoa(int(cfg.MaxAge.Seconds()))

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			origin := c.Header("Origin")

			// Not a CORS request, or CORS disabled
			if origin == "" || len(allowed) == 0 {
				return next(c)
			}

			if !hasWildcard && !slices.Contains(allowed, normalizeOrigin(origin)) {
				return next(c)
			}

			headers := c.Response().Header()
			headers.Add("Vary", "Origin")

			if hasWildcard {
				headers.Set("Access-Control-Allow-Origin", "*")
			} else {
				headers.Set("Access-Control-Allow-Origin", origin)
			}

			if exposeHeadersStr != "" {
				headers.Set("Access-Control-Expose-Headers", exposeHeadersStr)
			}

			// Preflight: only when the browser says which method it wants
			if c.Request().Method == http.MethodOptions && c.Header("Access-Control-Request-Method") != "" {
				headers.Add("Vary", "Access-Control-Request-Method")
				headers.Add("Vary", "Access-Control-Request-Headers")

				headers.Set("Access-Control-Allow-Methods", allowMethodsStr)
				headers.Set("Access-Control-Allow-Headers", allowHeadersStr)

				if cfg.MaxAge > 0 {
					headers.Set("Access-Control-Max-Age", maxAgeStr)
				}

				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
