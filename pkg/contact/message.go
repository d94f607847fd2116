package contact

import (
	"embed"

	"github.com/ecpw/site/pkg/mailer"
	"github.com/ecpw/site/pkg/sanitizer"
)

//go:embed templates
var templates embed.FS

const (
	messageTemplate = "contact.html"
	notProvided     = "Not provided"
)

// ConfirmationMessage is returned to the visitor once the provider accepts
// the message.
const ConfirmationMessage = "Thank you for reaching out. We will get back to you shortly."

// view holds HTML-escaped submission values for the message template.
type view struct {
	Name         string
	Email        string
	Phone        string
	Organization string
	Message      string
}

func newView(s Submission) view {
	return view{
		Name:         sanitizer.EscapeHTML(s.Name),
		Email:        sanitizer.EscapeHTML(s.Email),
		Phone:        sanitizer.EscapeHTML(orNotProvided(s.Phone)),
		Organization: sanitizer.EscapeHTML(orNotProvided(s.Organization)),
		Message:      sanitizer.EscapeHTML(s.Message),
	}
}

func orNotProvided(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}

// Subject returns the subject line for a submission.
func Subject(s Submission) string {
	return "New enquiry from " + sanitizer.HeaderValue(s.Name)
}

// NewRenderer returns a renderer for the embedded message template.
func NewRenderer() *mailer.Renderer {
	return mailer.NewRendererWithConfig(templates, mailer.RendererConfig{TemplateDir: "templates"})
}
