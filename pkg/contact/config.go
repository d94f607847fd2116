package contact

import (
	"strings"
)

// SandboxSenderPattern marks Resend's shared, unverified sender domain.
// Messages from it are only delivered to the account owner's address.
const SandboxSenderPattern = "resend.dev"

// Config controls where submissions are delivered.
// It is loaded once at startup and never changes afterwards.
type Config struct {
	APIKey        string `env:"RESEND_API_KEY"`
	From          string `env:"CONTACT_FROM" envDefault:"ECPW Website <onboarding@resend.dev>"`
	To            string `env:"CONTACT_TO" envDefault:"admin@ecpw.in"`
	TestRecipient string `env:"CONTACT_TEST_RECIPIENT"`
}

// IsSandboxSender reports whether From uses the sandbox domain.
func (c Config) IsSandboxSender() bool {
	return strings.Contains(strings.ToLower(c.From), SandboxSenderPattern)
}

// Recipient returns the address submissions go to: TestRecipient for a
// sandbox sender, To otherwise.
func (c Config) Recipient() (string, error) {
	if !c.IsSandboxSender() {
		return c.To, nil
	}
	if c.TestRecipient == "" {
		return "", ErrSenderIncomplete
	}
	return c.TestRecipient, nil
}

// Validate reports the first problem that would make every submission fail.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrNotConfigured
	}
	_, err := c.Recipient()
	return err
}
