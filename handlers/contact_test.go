package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecpw/site"
	"github.com/ecpw/site/handlers"
	"github.com/ecpw/site/middlewares"
	"github.com/ecpw/site/pkg/contact"
	"github.com/ecpw/site/pkg/mailer/resend"
)

var productionConfig = contact.Config{
	APIKey: "re_test",
	From:   "ECPW Website <hello@ecpw.in>",
	To:     "admin@ecpw.in",
}

const validBody = `{"name":"Dr. Smith","email":"a@b.com","message":"Interested"}`

// stubResend records /emails calls and answers with a fixed response.
type stubResend struct {
	*httptest.Server

	mu       sync.Mutex
	requests []map[string]any
}

func newStubResend(t *testing.T, code int, body string, delay time.Duration) *stubResend {
	t.Helper()
	s := &stubResend{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		s.mu.Lock()
		s.requests = append(s.requests, payload)
		s.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *stubResend) calls() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.requests...)
}

type routesFunc func(r site.Router)

func (f routesFunc) Routes(r site.Router) { f(r) }

func newApp(t *testing.T, cfg contact.Config, resendURL string, timeout time.Duration, extra ...site.Handler) *site.App {
	t.Helper()
	sender, err := resend.New(resend.Config{APIKey: cfg.APIKey, BaseURL: resendURL, Timeout: timeout})
	require.NoError(t, err)
	relay := contact.NewRelay(cfg, sender, contact.WithTimeoutLabel(timeout.String()))

	return site.New(
		site.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(middlewares.WithRecoverDisablePrintStack()),
		),
		site.WithErrorHandler(handlers.ErrorHandler),
		site.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		site.WithNotFoundHandler(handlers.NotFound),
		site.WithHandlers(append([]site.Handler{handlers.NewContact(relay)}, extra...)...),
	)
}

func post(app http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func TestContact_Success(t *testing.T) {
	t.Parallel()

	stub := newStubResend(t, http.StatusOK, `{"id":"msg_1"}`, 0)
	app := newApp(t, productionConfig, stub.URL, time.Second)

	rec, body := post(app, `{"name":"Dr. Smith","email":"a@b.com","phone":"","organization":"Acme","message":"Interested"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{
		"success": true,
		"message": "Thank you for reaching out. We will get back to you shortly.",
	}, body)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	calls := stub.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "ECPW Website <hello@ecpw.in>", calls[0]["from"])
	assert.Equal(t, []any{"admin@ecpw.in"}, calls[0]["to"])
	assert.Equal(t, "a@b.com", calls[0]["reply_to"])
	assert.Equal(t, "New enquiry from Dr. Smith", calls[0]["subject"])

	html, _ := calls[0]["html"].(string)
	assert.Contains(t, html, "Acme")
	assert.Contains(t, html, "Not provided")
	assert.Contains(t, html, "mailto:a@b.com")
}

func TestContact_EscapesHTML(t *testing.T) {
	t.Parallel()

	stub := newStubResend(t, http.StatusOK, `{"id":"msg_1"}`, 0)
	app := newApp(t, productionConfig, stub.URL, time.Second)

	rec, _ := post(app, `{"name":"<script>x</script>","email":"a@b.com","message":"Tom & \"Jerry\""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	html, _ := stub.calls()[0]["html"].(string)
	assert.Contains(t, html, "&lt;script&gt;x&lt;/script&gt;")
	assert.Contains(t, html, "Tom &amp; &quot;Jerry&quot;")
	assert.NotContains(t, html, "<script>")
}

func TestContact_StringWrappedBody(t *testing.T) {
	t.Parallel()

	stub := newStubResend(t, http.StatusOK, `{"id":"msg_1"}`, 0)
	app := newApp(t, productionConfig, stub.URL, time.Second)

	wrapped, err := json.Marshal(validBody)
	require.NoError(t, err)

	rec, _ := post(app, string(wrapped))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, stub.calls(), 1)
}

func TestContact_Rejections(t *testing.T) {
	t.Parallel()

	sandbox := productionConfig
	sandbox.From = "ECPW Website <onboarding@Resend.dev>"

	noKey := productionConfig
	noKey.APIKey = "  "

	tests := []struct {
		name    string
		cfg     contact.Config
		body    string
		code    int
		error   string
		details string
	}{
		{
			name:  "malformed json",
			cfg:   productionConfig,
			body:  `{"name":`,
			code:  http.StatusBadRequest,
			error: "Invalid JSON payload",
		},
		{
			name:  "empty body",
			cfg:   productionConfig,
			body:  ``,
			code:  http.StatusBadRequest,
			error: "Invalid JSON payload",
		},
		{
			name:  "missing message",
			cfg:   productionConfig,
			body:  `{"name":"A","email":"a@b.com"}`,
			code:  http.StatusBadRequest,
			error: "Name, email, and message are required",
		},
		{
			name:  "falsy name",
			cfg:   productionConfig,
			body:  `{"name":0,"email":"a@b.com","message":"hi"}`,
			code:  http.StatusBadRequest,
			error: "Name, email, and message are required",
		},
		{
			name:  "missing api key",
			cfg:   noKey,
			body:  validBody,
			code:  http.StatusInternalServerError,
			error: "Email service not configured",
		},
		{
			name:    "sandbox sender without override",
			cfg:     sandbox,
			body:    validBody,
			code:    http.StatusInternalServerError,
			error:   "Email sender configuration incomplete",
			details: contact.SenderIncompleteDetails,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stub := newStubResend(t, http.StatusOK, `{"id":"msg_1"}`, 0)
			app := newApp(t, tt.cfg, stub.URL, time.Second)

			rec, body := post(app, tt.body)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.error, body["error"])
			if tt.details != "" {
				assert.Equal(t, tt.details, body["details"])
			} else {
				assert.NotContains(t, body, "details")
			}
			assert.Empty(t, stub.calls(), "no provider call")
		})
	}
}

func TestContact_SandboxOverride(t *testing.T) {
	t.Parallel()

	cfg := productionConfig
	cfg.From = "ECPW Website <onboarding@resend.dev>"
	cfg.TestRecipient = "owner@example.com"

	stub := newStubResend(t, http.StatusOK, `{"id":"msg_1"}`, 0)
	app := newApp(t, cfg, stub.URL, time.Second)

	rec, _ := post(app, validBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"owner@example.com"}, stub.calls()[0]["to"])
}

func TestContact_ProviderRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    int
		body    string
		details string
	}{
		{
			name:    "message field",
			code:    http.StatusUnprocessableEntity,
			body:    `{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`,
			details: "Resend rejected the request: Invalid from field",
		},
		{
			name:    "error field",
			code:    http.StatusForbidden,
			body:    `{"error":"domain not verified"}`,
			details: "Resend rejected the request: domain not verified",
		},
		{
			name:    "raw text",
			code:    http.StatusTooManyRequests,
			body:    `rate limited`,
			details: "Resend rejected the request: rate limited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stub := newStubResend(t, tt.code, tt.body, 0)
			app := newApp(t, productionConfig, stub.URL, time.Second)

			rec, body := post(app, validBody)

			assert.Equal(t, http.StatusBadGateway, rec.Code)
			assert.Equal(t, "Failed to send email", body["error"])
			assert.Equal(t, tt.details, body["details"])
			assert.Len(t, stub.calls(), 1, "exactly one attempt")
		})
	}
}

func TestContact_ProviderTimeout(t *testing.T) {
	t.Parallel()

	stub := newStubResend(t, http.StatusOK, `{"id":"msg_1"}`, time.Second)
	app := newApp(t, productionConfig, stub.URL, 50*time.Millisecond)

	rec, body := post(app, validBody)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Failed to send email", body["error"])
	assert.Equal(t, "Resend did not respond in time (50ms)", body["details"])
}

func TestContact_ProviderUnreachable(t *testing.T) {
	t.Parallel()

	stub := newStubResend(t, http.StatusOK, `{}`, 0)
	url := stub.URL
	stub.Close()

	app := newApp(t, productionConfig, url, time.Second)

	rec, body := post(app, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"error": "Internal server error"}, body)
}

func TestContact_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	stub := newStubResend(t, http.StatusOK, `{}`, 0)
	app := newApp(t, productionConfig, stub.URL, time.Second)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/contact", nil)
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String(), method)
	}
	assert.Empty(t, stub.calls())
}

func TestContact_Panic(t *testing.T) {
	t.Parallel()

	stub := newStubResend(t, http.StatusOK, `{}`, 0)
	app := newApp(t, productionConfig, stub.URL, time.Second, routesFunc(func(r site.Router) {
		r.GET("/boom", func(c site.Context) error { panic("boom") })
	}))

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
