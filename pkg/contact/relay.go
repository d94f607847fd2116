package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/ecpw/site/pkg/mailer"
	"github.com/ecpw/site/pkg/mailer/resend"
)

// Relay turns submissions into emails. It is safe for concurrent use.
type Relay struct {
	cfg      Config
	mailer   *mailer.Mailer
	validate *validator.Validate
	logger   *slog.Logger
	timeout  string
}

// Option configures a Relay.
type Option func(*Relay)

// WithLogger sets the logger for configuration and delivery failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Relay) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithValidator replaces the default validator instance.
func WithValidator(v *validator.Validate) Option {
	return func(r *Relay) {
		if v != nil {
			r.validate = v
		}
	}
}

// WithTimeoutLabel sets how the provider timeout is described to visitors,
// e.g. "10s".
func WithTimeoutLabel(label string) Option {
	return func(r *Relay) {
		r.timeout = label
	}
}

// NewRelay creates a Relay delivering through sender.
func NewRelay(cfg Config, sender mailer.Sender, opts ...Option) *Relay {
	r := &Relay{
		cfg:      cfg,
		mailer:   mailer.New(sender, NewRenderer()),
		validate: validator.New(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the relay's dispatch configuration.
func (r *Relay) Config() Config {
	return r.cfg
}

// Send validates s and delivers it to the configured recipient.
//
// Input and configuration problems are reported before any network activity.
// At most one provider request is made. It is detached from ctx
// cancellation so a visitor closing the page cannot half-cancel a delivery.
func (r *Relay) Send(ctx context.Context, s Submission) error {
	if err := r.validate.StructCtx(ctx, s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ErrMissingFields
		}
		return fmt.Errorf("validate submission: %w", err)
	}

	if err := r.cfg.Validate(); err != nil {
		r.logger.ErrorContext(ctx, "contact relay misconfigured",
			slog.Any("error", err),
			slog.Bool("sandbox_sender", r.cfg.IsSandboxSender()),
		)
		return err
	}

	to, err := r.cfg.Recipient()
	if err != nil {
		return err
	}

	err = r.mailer.Send(context.WithoutCancel(ctx), mailer.SendParams{
		To:       []string{to},
		From:     r.cfg.From,
		ReplyTo:  s.Email,
		Subject:  Subject(s),
		Template: messageTemplate,
		Data:     newView(s),
	})
	if err == nil {
		return nil
	}

	if pe, ok := resend.AsProviderError(err); ok {
		r.logger.ErrorContext(ctx, "resend rejected contact email",
			slog.Int("status", pe.StatusCode),
			slog.String("provider_message", pe.Message()),
			slog.String("body", pe.Body),
		)
		return &DeliveryError{
			Err:    err,
			Detail: "Resend rejected the request: " + pe.Message(),
		}
	}

	if resend.IsTimeout(err) {
		r.logger.ErrorContext(ctx, "resend request timed out", slog.Any("error", err))
		detail := "Resend did not respond in time"
		if r.timeout != "" {
			detail += " (" + r.timeout + ")"
		}
		return &DeliveryError{Err: err, Detail: detail}
	}

	return fmt.Errorf("send contact email: %w", err)
}
