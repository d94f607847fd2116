package mailer

import (
	"context"
	"errors"
)

// Mailer renders a template and hands the result to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer) *Mailer {
	return &Mailer{sender: sender, renderer: renderer}
}

// SendParams describes one templated email.
type SendParams struct {
	Data     any    // Template data, already escaped for HTML output
	Template string // Template filename (e.g. "contact.html")
	Subject  string
	From     string // Overrides the sender default
	ReplyTo  string
	To       []string
}

// Send renders params.Template and sends the email.
// Provider errors are joined with ErrSendFailed so callers can still reach
// the provider's typed error with errors.As.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if len(params.To) == 0 {
		return ErrNoRecipient
	}

	html, err := m.renderer.Render(params.Template, params.Data)
	if err != nil {
		return err
	}

	return m.SendRaw(ctx, &Email{
		To:      params.To,
		From:    params.From,
		ReplyTo: params.ReplyTo,
		Subject: params.Subject,
		HTML:    html,
	})
}

// SendRaw sends a pre-built email without template rendering.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" {
		return ErrNoContent
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
