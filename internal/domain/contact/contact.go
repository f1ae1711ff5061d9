// Package contact handles the public contact form.
package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"gestobra/internal/core/apperror"
	"gestobra/pkg/logger"
)

// Field limits of the contact form.
const (
	MaxNameLength    = 100
	MaxMessageLength = 5000
)

// Message is a submitted contact form.
type Message struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Normalize trims every field.
func (m *Message) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Phone = strings.TrimSpace(m.Phone)
	m.Message = strings.TrimSpace(m.Message)
}

// Validate checks the required fields. Details name every failing field.
func (m Message) Validate() error {
	fields := map[string]string{}

	switch {
	case m.Name == "":
		fields["name"] = "required"
	case utf8.RuneCountInString(m.Name) > MaxNameLength:
		fields["name"] = fmt.Sprintf("at most %d characters", MaxNameLength)
	}

	if m.Email == "" {
		fields["email"] = "required"
	} else if _, err := mail.ParseAddress(m.Email); err != nil {
		fields["email"] = "invalid address"
	}

	switch {
	case m.Message == "":
		fields["message"] = "required"
	case utf8.RuneCountInString(m.Message) > MaxMessageLength:
		fields["message"] = fmt.Sprintf("at most %d characters", MaxMessageLength)
	}

	if len(fields) == 0 {
		return nil
	}
	return apperror.NewValidation("contact form is incomplete").WithDetail("fields", fields)
}

// Mailer delivers a contact message to the company inbox.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Service validates and forwards contact messages.
type Service struct {
	mailer Mailer
}

func NewService(mailer Mailer) *Service {
	return &Service{mailer: mailer}
}

// Submit forwards msg. Delivery failures surface as TRANSPORT_FAILURE.
func (s *Service) Submit(ctx context.Context, msg Message) error {
	msg.Normalize()
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.Warn(ctx, "contact message not delivered", "email", msg.Email, "error", err)
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewTransportFailure("mail", "The message could not be delivered", err)
	}

	logger.Info(ctx, "contact message delivered", "email", msg.Email)
	return nil
}
