// Package mailer separates composing an email from delivering it.
//
//   - Sender: interface implemented by providers (see package resend)
//   - Renderer: executes body templates from an fs.FS, caching parsed templates
//   - Mailer: renders a template and passes the Email to a Sender
//
// Usage:
//
//	sender := resend.New(resend.Config{APIKey: os.Getenv("RESEND_API_KEY")})
//	m := mailer.New(sender, mailer.NewRenderer(templates.FS))
//
//	err := m.Send(ctx, mailer.SendParams{
//		To:       []string{"admin@example.com"},
//		From:     "Website <noreply@example.com>",
//		ReplyTo:  "visitor@example.com",
//		Subject:  "New enquiry from Visitor",
//		Template: "contact.html",
//		Data:     view,
//	})
//
// Templates are text/template files and are not auto-escaped. Whatever ends
// up in an HTML body must be escaped before it is passed as Data.
//
// Send and SendRaw join provider failures with ErrSendFailed; the provider's
// own error type stays reachable through errors.As.
package mailer
