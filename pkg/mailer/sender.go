package mailer

import "context"

// Sender is the minimal interface an email provider implements.
type Sender interface {
	// Send delivers one message. The Email has To, Subject and HTML set.
	// Implementations make at most one delivery attempt; retrying is the
	// caller's decision.
	Send(ctx context.Context, email *Email) error
}
