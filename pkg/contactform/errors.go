package contactform

import "errors"

var (
	// ErrBusy is returned by Submit while a previous submission is in flight.
	ErrBusy = errors.New("contactform: submission in progress")

	// ErrRequired is returned when a required field is empty.
	ErrRequired = errors.New("contactform: required field is empty")

	// ErrUnknownField is returned by Set for a field the form does not have.
	ErrUnknownField = errors.New("contactform: unknown field")
)
