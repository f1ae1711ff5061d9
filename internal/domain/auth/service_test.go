package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestobra/internal/core/apperror"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	return NewService(
		Admin{Email: " Admin@Gestobra.test ", PasswordHash: hash},
		NewJWTService(DefaultJWTConfig("test-secret")),
	)
}

func TestService_Login(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Login(context.Background(), Credentials{Email: "admin@gestobra.test", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)

	user, err := svc.jwt.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, user.Role)
	assert.Equal(t, "admin@gestobra.test", user.Email)
}

func TestService_LoginRejected(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name  string
		creds Credentials
	}{
		{name: "wrong password", creds: Credentials{Email: "admin@gestobra.test", Password: "nope"}},
		{name: "wrong email", creds: Credentials{Email: "other@gestobra.test", Password: "s3cret"}},
		{name: "empty", creds: Credentials{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.creds)
			assert.True(t, apperror.HasCode(err, apperror.CodeUnauthorized))
		})
	}
}

func TestService_LoginNotConfigured(t *testing.T) {
	svc := NewService(Admin{}, NewJWTService(DefaultJWTConfig("x")))
	_, err := svc.Login(context.Background(), Credentials{Email: "a@b.c", Password: "p"})
	assert.True(t, apperror.HasCode(err, apperror.CodeUnauthorized))
}
