package mailer

// Email is a fully-prepared message ready for a Sender.
type Email struct {
	Headers map[string]string // Custom headers
	Subject string            // Single-line subject
	HTML    string            // HTML body
	Text    string            // Optional plain text alternative
	From    string            // Overrides the sender's default From
	ReplyTo string            // Reply-To address
	To      []string          // Recipients (at least one required)
	CC      []string
	BCC     []string
}
