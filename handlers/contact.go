package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/ecpw/site"
	"github.com/ecpw/site/pkg/contact"
)

// maxBodySize caps the contact payload.
const maxBodySize = 1 << 20 // 1MB

// Public messages of the contact endpoint.
const (
	msgInvalidPayload   = "Invalid JSON payload"
	msgMissingFields    = "Name, email, and message are required"
	msgNotConfigured    = "Email service not configured"
	msgSenderIncomplete = "Email sender configuration incomplete"
	msgDeliveryFailed   = "Failed to send email"
	msgInternal         = "Internal server error"
	msgMethodNotAllowed = "Method not allowed"
	msgNotFound         = "Not found"
)

// ContactHandler accepts contact form submissions and relays them by email.
type ContactHandler struct {
	relay *contact.Relay
}

// NewContact creates a new contact handler.
func NewContact(relay *contact.Relay) *ContactHandler {
	return &ContactHandler{relay: relay}
}

// Routes declares all routes for the contact handler.
func (h *ContactHandler) Routes(r site.Router) {
	r.POST("/api/contact", h.submit)
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *ContactHandler) submit(c site.Context) error {
	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, maxBodySize))
	if err != nil {
		return site.ErrBadRequest(msgInvalidPayload, site.WithError(err))
	}

	submission, err := contact.ParseSubmission(body)
	if err != nil {
		return site.ErrBadRequest(msgInvalidPayload, site.WithError(err))
	}

	if err := h.relay.Send(c, submission); err != nil {
		return deliveryError(err)
	}

	return c.JSON(http.StatusOK, submitResponse{
		Success: true,
		Message: contact.ConfirmationMessage,
	})
}

// deliveryError maps relay failures to client responses.
// Unknown errors pass through and render as 500.
func deliveryError(err error) error {
	if de, ok := contact.AsDeliveryError(err); ok {
		return site.ErrBadGateway(msgDeliveryFailed, site.WithDetail(de.Detail), site.WithError(err))
	}

	switch {
	case errors.Is(err, contact.ErrMissingFields):
		return site.ErrBadRequest(msgMissingFields, site.WithError(err))
	case errors.Is(err, contact.ErrNotConfigured):
		return site.ErrInternal(msgNotConfigured, site.WithError(err))
	case errors.Is(err, contact.ErrSenderIncomplete):
		return site.ErrInternal(msgSenderIncomplete,
			site.WithDetail(contact.SenderIncompleteDetails),
			site.WithError(err),
		)
	default:
		return err
	}
}
