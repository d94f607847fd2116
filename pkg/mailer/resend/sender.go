package resend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/ecpw/site/pkg/mailer"
)

// maxErrorBody caps how much of an error response is kept.
const maxErrorBody = 64 << 10

// Sender implements mailer.Sender using the Resend API.
//
// The SDK client builds the authenticated request; the exchange itself runs
// on the sender's own http.Client so that error bodies survive verbatim.
type Sender struct {
	client *resend.Client
	http   *http.Client
	logger *slog.Logger
}

// Option configures a Sender.
type Option func(*Sender)

// WithLogger sets the logger used to record accepted message IDs.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sender) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHTTPClient replaces the HTTP client. Config.Timeout is ignored then.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Sender) {
		if c != nil {
			s.http = c
		}
	}
}

// New creates a new Resend sender.
func New(cfg Config, opts ...Option) (*Sender, error) {
	s := &Sender{
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = resend.NewCustomClient(s.http, strings.TrimSpace(cfg.APIKey))

	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
		}
		s.client.BaseURL = u
	}

	return s, nil
}

// Send implements mailer.Sender. It makes exactly one request.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	req, err := s.client.NewRequest(ctx, http.MethodPost, "emails", &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	})
	if err != nil {
		return fmt.Errorf("resend: build request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return errors.Join(ErrTimeout, err)
		}
		return fmt.Errorf("resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readProviderError(resp)
	}

	var sent resend.SendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&sent); err != nil && !errors.Is(err, io.EOF) {
		// Accepted anyway; the ID is informational.
		s.logger.WarnContext(ctx, "resend: undecodable success response", slog.Any("error", err))
		return nil
	}

	s.logger.InfoContext(ctx, "email accepted",
		slog.String("message_id", sent.Id),
		slog.Int("recipients", len(email.To)),
	)
	return nil
}

func readProviderError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil && isTimeout(err) {
		return errors.Join(ErrTimeout, err)
	}

	pe := &ProviderError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	var payload any
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		pe.Payload = payload
	}
	return pe
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
