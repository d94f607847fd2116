package resend

import "time"

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey  string        `env:"RESEND_API_KEY"`
	BaseURL string        `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com/"`
	Timeout time.Duration `env:"RESEND_TIMEOUT" envDefault:"10s"`
}
