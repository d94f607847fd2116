package mailer

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of Sender interface.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func testTemplates() fstest.MapFS {
	return fstest.MapFS{
		"contact.html": &fstest.MapFile{Data: []byte(`<p>{{.Name}}</p>`)},
	}
}

func TestMailer_Send_Success(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, NewRenderer(testTemplates()))

	sender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.To[0] == "admin@example.com" &&
			email.From == "Site <noreply@example.com>" &&
			email.ReplyTo == "visitor@example.com" &&
			email.Subject == "New enquiry from Alice" &&
			email.HTML == "<p>Alice</p>"
	})).Return(nil)

	err := m.Send(context.Background(), SendParams{
		To:       []string{"admin@example.com"},
		From:     "Site <noreply@example.com>",
		ReplyTo:  "visitor@example.com",
		Subject:  "New enquiry from Alice",
		Template: "contact.html",
		Data:     map[string]string{"Name": "Alice"},
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailer_Send_NoRecipient(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, NewRenderer(testTemplates()))

	err := m.Send(context.Background(), SendParams{Template: "contact.html", Subject: "x"})

	require.ErrorIs(t, err, ErrNoRecipient)
	sender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_MissingTemplate(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, NewRenderer(fstest.MapFS{}))

	err := m.Send(context.Background(), SendParams{
		To:       []string{"admin@example.com"},
		Subject:  "x",
		Template: "missing.html",
	})

	require.ErrorIs(t, err, ErrTemplateNotFound)
	sender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_SenderFailure(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, NewRenderer(testTemplates()))

	providerErr := errors.New("422 invalid from address")
	sender.On("Send", mock.Anything, mock.Anything).Return(providerErr)

	err := m.Send(context.Background(), SendParams{
		To:       []string{"admin@example.com"},
		Subject:  "x",
		Template: "contact.html",
		Data:     map[string]string{"Name": "Alice"},
	})

	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, providerErr)
	sender.AssertExpectations(t)
}

func TestMailer_SendRaw_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email *Email
		want  error
	}{
		{"no recipient", &Email{Subject: "s", HTML: "<p></p>"}, ErrNoRecipient},
		{"no subject", &Email{To: []string{"a@b.c"}, HTML: "<p></p>"}, ErrNoSubject},
		{"no content", &Email{To: []string{"a@b.c"}, Subject: "s"}, ErrNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &MockSender{}
			err := New(sender, nil).SendRaw(context.Background(), tt.email)

			require.ErrorIs(t, err, tt.want)
			sender.AssertNotCalled(t, "Send")
		})
	}
}
