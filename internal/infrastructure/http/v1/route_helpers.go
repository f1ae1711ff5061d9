// Package v1 provides HTTP API version 1.
package v1

import (
	"sort"

	"github.com/gin-gonic/gin"

	"gestobra/internal/domain/filter"
)

// CatalogRouteHandler defines the interface for catalog handlers.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// InventoryRouteHandler defines the interface for stock movement handlers.
type InventoryRouteHandler interface {
	In(c *gin.Context)
	Out(c *gin.Context)
	Stats(c *gin.Context)
}

// ReportRouteHandler defines the interface for report handlers.
type ReportRouteHandler interface {
	Export(c *gin.Context)
}

// RegisterCatalogRoutes registers standard CRUD routes for a catalog.
//
// Usage:
//
//	RegisterCatalogRoutes(api.Group("/clients"), clientHandler)
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}

// RegisterInventoryRoutes registers stock movement and statistics routes.
func RegisterInventoryRoutes(group *gin.RouterGroup, handler InventoryRouteHandler) {
	group.GET("/stats", handler.Stats)
	group.POST("/:id/in", handler.In)
	group.POST("/:id/out", handler.Out)
}

// RegisterReportRoutes registers the export route of an entity.
func RegisterReportRoutes(group *gin.RouterGroup, handler ReportRouteHandler) {
	group.POST("/report", handler.Export)
}

// enumNames lists the enum fields of an entity; they become list query parameters.
func enumNames[T any](fields filter.Fields[T]) []string {
	names := make([]string, 0, len(fields.Enums))
	for name := range fields.Enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// asDTO adapts a typed response mapper to the handlers' func(T) any.
func asDTO[T any, R any](fn func(T) R) func(T) any {
	return func(v T) any { return fn(v) }
}
