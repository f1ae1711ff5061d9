package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"gestobra/internal/core/id"
	"gestobra/internal/domain/stock"
	"gestobra/internal/infrastructure/http/v1/dto"
)

// InventoryService moves stock and summarizes levels.
type InventoryService[T any, S any] interface {
	Move(ctx context.Context, itemID id.ID, m stock.Movement) (T, error)
	Stats(ctx context.Context) (S, error)
}

// InventoryHandler serves stock movements and level statistics.
type InventoryHandler[T any, S any] struct {
	*BaseHandler
	service  InventoryService[T, S]
	mapToDTO func(T) any
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler[T any, S any](base *BaseHandler, service InventoryService[T, S], mapToDTO func(T) any) *InventoryHandler[T, S] {
	return &InventoryHandler[T, S]{
		BaseHandler: base,
		service:     service,
		mapToDTO:    mapToDTO,
	}
}

// In handles POST /{entity}/:id/in.
func (h *InventoryHandler[T, S]) In(c *gin.Context) {
	h.move(c, stock.DirectionIn)
}

// Out handles POST /{entity}/:id/out.
func (h *InventoryHandler[T, S]) Out(c *gin.Context) {
	h.move(c, stock.DirectionOut)
}

func (h *InventoryHandler[T, S]) move(c *gin.Context, direction stock.Direction) {
	itemID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.MovementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	movement, err := req.ToMovement(direction)
	if err != nil {
		h.Error(c, err)
		return
	}

	item, err := h.service.Move(c.Request.Context(), itemID, movement)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(item))
}

// Stats handles GET /{entity}/stats.
func (h *InventoryHandler[T, S]) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, stats)
}
