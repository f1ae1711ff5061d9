package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gestobra/internal/core/apperror"
	appctx "gestobra/internal/core/context"
	"gestobra/pkg/logger"
)

// RoleAdmin is the only role issued by the service.
const RoleAdmin = "admin"

// Credentials for login.
type Credentials struct {
	Email    string
	Password string
}

// Token is an issued access token.
type Token struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Admin is the configured administrator account.
type Admin struct {
	Email        string
	PasswordHash string
}

// Service authenticates the administrator.
type Service struct {
	admin Admin
	jwt   *JWTService
}

// NewService creates a new auth service. An admin without email disables login.
func NewService(admin Admin, jwtService *JWTService) *Service {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	return &Service{admin: admin, jwt: jwtService}
}

// Login checks creds against the administrator account and issues a token.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Token, error) {
	if s.admin.Email == "" {
		return nil, apperror.NewUnauthorized("login is not configured")
	}

	email := strings.ToLower(strings.TrimSpace(creds.Email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.admin.Email)) == 1

	// The hash is always compared so a wrong email costs the same as a wrong password.
	hashErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(creds.Password))
	if !emailOK || hashErr != nil {
		logger.Warn(ctx, "login rejected", "email", email)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	access, expiresAt, err := s.jwt.GenerateAccessToken(appctx.UserContext{
		UserID: s.admin.Email,
		Email:  s.admin.Email,
		Role:   RoleAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	logger.Info(ctx, "admin logged in", "email", email)

	return &Token{AccessToken: access, ExpiresAt: expiresAt}, nil
}

// HashPassword returns the bcrypt hash stored in auth.admin_password_hash.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", apperror.NewValidation("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
