package contactform

// Status is the lifecycle stage of a form submission.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSent    Status = "sent"
	StatusError   Status = "error"
)

// State is what the form shows. Error is set only with StatusError.
type State struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Form field names, in display order.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldOrganization = "organization"
	FieldMessage      = "message"
)

// Fields lists every form field.
var Fields = []string{FieldName, FieldEmail, FieldPhone, FieldOrganization, FieldMessage}

var requiredFields = []string{FieldName, FieldEmail, FieldMessage}
