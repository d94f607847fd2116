// Package contact relays website contact-form submissions by email.
//
// A Relay validates a Submission, resolves the recipient from Config, renders
// the fixed HTML message with every visitor-supplied value escaped and makes
// a single delivery attempt through a mailer.Sender:
//
//	relay := contact.NewRelay(cfg, sender, contact.WithLogger(log))
//	sub, err := contact.ParseSubmission(body)
//	if err != nil { ... }            // ErrInvalidPayload
//	err = relay.Send(ctx, sub)        // ErrMissingFields, ErrNotConfigured,
//	                                  // ErrSenderIncomplete, *DeliveryError
//
// When Config.From uses the Resend sandbox domain, messages can only reach
// the account owner, so Config.TestRecipient is required and replaces the
// production recipient.
package contact
