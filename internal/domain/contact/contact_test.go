package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestobra/internal/core/apperror"
)

type fakeMailer struct {
	sent []Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestService_Submit(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(mailer)

	err := svc.Submit(context.Background(), Message{
		Name:    "  Ana Rojas ",
		Email:   "ana@example.com",
		Message: "Necesito una cotización",
	})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Ana Rojas", mailer.sent[0].Name)
}

func TestService_Submit_Invalid(t *testing.T) {
	mailer := &fakeMailer{}
	err := NewService(mailer).Submit(context.Background(), Message{Email: "not-an-address"})

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, map[string]string{
		"name":    "required",
		"email":   "invalid address",
		"message": "required",
	}, appErr.Details["fields"])
	assert.Empty(t, mailer.sent)
}

func TestService_Submit_DeliveryFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"plain error is wrapped", errors.New("dial tcp: timeout"), "The message could not be delivered"},
		{"typed failure passes through", apperror.NewTransportFailure("sendgrid", "Daily quota exceeded", nil), "Daily quota exceeded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewService(&fakeMailer{err: tt.err}).Submit(context.Background(), Message{
				Name: "Ana", Email: "ana@example.com", Message: "Hola",
			})

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeTransportFailure, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}
