package contact

import "errors"

var (
	// ErrInvalidPayload indicates the request body is not a JSON object.
	ErrInvalidPayload = errors.New("contact: invalid json payload")

	// ErrMissingFields indicates name, email or message is empty.
	ErrMissingFields = errors.New("contact: name, email, and message are required")

	// ErrNotConfigured indicates the provider API key is missing.
	ErrNotConfigured = errors.New("contact: email service not configured")

	// ErrSenderIncomplete indicates a sandbox sender without an override recipient.
	ErrSenderIncomplete = errors.New("contact: email sender configuration incomplete")

	// ErrDeliveryFailed indicates the provider rejected the message or timed out.
	ErrDeliveryFailed = errors.New("contact: failed to send email")
)

// SenderIncompleteDetails tells the operator how to fix ErrSenderIncomplete.
const SenderIncompleteDetails = "CONTACT_FROM uses the Resend sandbox domain (" + SandboxSenderPattern + "), " +
	"which can only deliver to the account owner's address. Set CONTACT_TEST_RECIPIENT to that address, " +
	"or verify a domain in Resend and use it in CONTACT_FROM."

// DeliveryError describes a provider failure in terms safe to show a visitor.
type DeliveryError struct {
	Err    error
	Detail string // e.g. "Resend rejected the request: invalid from address"
}

func (e *DeliveryError) Error() string {
	return ErrDeliveryFailed.Error() + ": " + e.Detail
}

func (e *DeliveryError) Unwrap() []error {
	return []error{ErrDeliveryFailed, e.Err}
}

// AsDeliveryError extracts a DeliveryError from an error chain.
func AsDeliveryError(err error) (*DeliveryError, bool) {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
