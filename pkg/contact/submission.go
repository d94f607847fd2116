package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Submission is one visitor enquiry. It lives for a single request.
type Submission struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`
	Message      string `json:"message" validate:"required"`
}

// ParseSubmission decodes a request body into a Submission.
//
// The body must be a JSON object, or a JSON string holding one. Field values
// may be strings, numbers, booleans or null; null, false, 0 and "" all
// decode to the empty string and therefore count as missing.
func ParseSubmission(data []byte) (Submission, error) {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return Submission{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		data = bytes.TrimSpace([]byte(inner))
	}

	if len(data) == 0 || data[0] != '{' {
		return Submission{}, ErrInvalidPayload
	}

	var p struct {
		Name         field `json:"name"`
		Email        field `json:"email"`
		Phone        field `json:"phone"`
		Organization field `json:"organization"`
		Message      field `json:"message"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Submission{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return Submission{
		Name:         string(p.Name),
		Email:        string(p.Email),
		Phone:        string(p.Phone),
		Organization: string(p.Organization),
		Message:      string(p.Message),
	}, nil
}

// field is a loosely typed form value.
type field string

func (f *field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*f = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = field(s)
	case 'n', 'f':
		*f = ""
	case 't':
		*f = "true"
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			return err
		}
		*f = field(buf.String())
	default:
		n, err := strconv.ParseFloat(string(b), 64)
		if errors.Is(err, strconv.ErrRange) && math.IsInf(n, 0) {
			// Out of float64 range: present, and rendered the way
			// browsers print it.
			*f = "Infinity"
			if n < 0 {
				*f = "-Infinity"
			}
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			*f = ""
			return nil
		}
		*f = field(b)
	}
	return nil
}
