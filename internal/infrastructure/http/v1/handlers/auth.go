package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"gestobra/internal/domain/auth"
	"gestobra/internal/infrastructure/http/v1/dto"
)

// Authenticator issues tokens for valid credentials.
type Authenticator interface {
	Login(ctx context.Context, creds auth.Credentials) (*auth.Token, error)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service Authenticator
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service Authenticator) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.ToCredentials())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, token)
}
