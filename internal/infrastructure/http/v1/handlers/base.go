// Package handlers provides HTTP request handlers.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/id"
	"gestobra/internal/domain"
	"gestobra/internal/domain/filter"
	"gestobra/internal/infrastructure/http/v1/dto"
)

// DefaultPageSize applies when the request has no limit.
const DefaultPageSize = 50

// BaseHandler provides common handler utilities.
type BaseHandler struct {
	// loc places bare days of date filters
	loc *time.Location
}

// NewBaseHandler creates a new base handler. A nil loc means UTC.
func NewBaseHandler(loc *time.Location) *BaseHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &BaseHandler{loc: loc}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers error on Gin context and aborts request.
// The JSON response is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseID reads the :id path parameter.
func (h *BaseHandler) ParseID(c *gin.Context) (id.ID, bool) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format").WithDetail("id", c.Param("id")))
		return id.ID{}, false
	}
	return entityID, true
}

// ParseIntQuery parses integer query parameter with default value.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, key string, defaultVal int) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return defaultVal
	}
	return parsed
}

// ParseListFilter reads the filter state of a list screen: search, from, to,
// dateField, one param per enum name, the JSON "filter" array, limit and offset.
func (h *BaseHandler) ParseListFilter(c *gin.Context, enums []string) (domain.ListFilter, error) {
	q := filter.Query{
		Search:    c.Query("search"),
		DateField: c.Query("dateField"),
		Location:  h.loc,
	}

	from, err := filter.ParseDay(c.Query("from"), h.loc)
	if err != nil {
		return domain.ListFilter{}, apperror.NewValidation("invalid from date").WithDetail("from", c.Query("from"))
	}
	to, err := filter.ParseDay(c.Query("to"), h.loc)
	if err != nil {
		return domain.ListFilter{}, apperror.NewValidation("invalid to date").WithDetail("to", c.Query("to"))
	}
	q.From, q.To = from, to

	for _, name := range enums {
		if v, ok := c.GetQuery(name); ok {
			if q.Enums == nil {
				q.Enums = make(map[string]string, len(enums))
			}
			q.Enums[name] = v
		}
	}

	if raw := c.Query("filter"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &q.Items); err != nil {
			return domain.ListFilter{}, apperror.NewValidation("invalid filter format (json expected)")
		}
	}

	return domain.ListFilter{
		Query:  q,
		Limit:  h.ParseIntQuery(c, "limit", DefaultPageSize),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}, nil
}

// OK sends 200 with the data envelope.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: data})
}

// Created sends 201 with the data envelope.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.DataResponse{Success: true, Data: data})
}

// Success sends success response without data.
func (h *BaseHandler) Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: message})
}
