package resend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecpw/site/pkg/mailer"
	"github.com/ecpw/site/pkg/mailer/resend"
)

func testEmail() *mailer.Email {
	return &mailer.Email{
		From:    "Site <onboarding@resend.dev>",
		To:      []string{"admin@example.com"},
		ReplyTo: "visitor@example.com",
		Subject: "New enquiry from Alice",
		HTML:    "<p>hi</p>",
	}
}

func newSender(t *testing.T, url string, timeout time.Duration) *resend.Sender {
	t.Helper()
	s, err := resend.New(resend.Config{APIKey: "re_test", BaseURL: url, Timeout: timeout})
	require.NoError(t, err)
	return s
}

func TestSender_Send_Success(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	t.Cleanup(srv.Close)

	err := newSender(t, srv.URL, time.Second).Send(context.Background(), testEmail())
	require.NoError(t, err)

	assert.Equal(t, "Site <onboarding@resend.dev>", got["from"])
	assert.Equal(t, []any{"admin@example.com"}, got["to"])
	assert.Equal(t, "visitor@example.com", got["reply_to"])
	assert.Equal(t, "New enquiry from Alice", got["subject"])
	assert.Equal(t, "<p>hi</p>", got["html"])
}

func TestSender_Send_ProviderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"json message", http.StatusUnprocessableEntity, `{"message":"invalid from address","name":"validation_error"}`, "invalid from address"},
		{"json error field", http.StatusForbidden, `{"error":"domain not verified"}`, "domain not verified"},
		{"json without known fields", http.StatusBadRequest, `{"code":42}`, `{"code":42}`},
		{"raw text", http.StatusTooManyRequests, `rate limited`, "rate limited"},
		{"raw text with angle brackets", http.StatusBadRequest, `quota a < b & c > d`, "quota a < b & c > d"},
		{"html page", http.StatusBadGateway, `<html><body><h1>Bad gateway</h1></body></html>`, "Bad gateway"},
		{"empty body", http.StatusServiceUnavailable, ``, "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			err := newSender(t, srv.URL, time.Second).Send(context.Background(), testEmail())
			require.Error(t, err)

			pe, ok := resend.AsProviderError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, pe.StatusCode)
			assert.Equal(t, tt.body, pe.Body)
			assert.Equal(t, tt.message, pe.Message())
			assert.False(t, resend.IsTimeout(err))
		})
	}
}

func TestSender_Send_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	err := newSender(t, srv.URL, 50*time.Millisecond).Send(context.Background(), testEmail())
	require.Error(t, err)
	assert.True(t, resend.IsTimeout(err))

	_, ok := resend.AsProviderError(err)
	assert.False(t, ok)
}

func TestSender_Send_SingleAttempt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	err := newSender(t, srv.URL, time.Second).Send(context.Background(), testEmail())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := resend.New(resend.Config{APIKey: "k", BaseURL: "not a url"})
	require.ErrorIs(t, err, resend.ErrInvalidBaseURL)
}
