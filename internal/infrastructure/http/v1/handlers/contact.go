package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"gestobra/internal/domain/contact"
	"gestobra/internal/infrastructure/http/v1/dto"
)

// ContactSubmitter delivers contact form messages.
type ContactSubmitter interface {
	Submit(ctx context.Context, msg contact.Message) error
}

// ContactHandler serves the public contact form.
type ContactHandler struct {
	*BaseHandler
	service ContactSubmitter
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(base *BaseHandler, service ContactSubmitter) *ContactHandler {
	return &ContactHandler{BaseHandler: base, service: service}
}

// Submit handles POST /contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Submit(c.Request.Context(), req.ToMessage()); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "message sent")
}
