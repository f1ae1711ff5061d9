package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestobra/internal/domain/reports"
	"gestobra/internal/infrastructure/http/v1/dto"
)

// Exporter renders one entity's report.
type Exporter interface {
	Export(ctx context.Context, cfg reports.Configuration) (*reports.Output, error)
}

// ReportHandler serves POST /{entity}/report.
type ReportHandler struct {
	*BaseHandler
	exporter Exporter
}

// NewReportHandler creates a new report handler.
func NewReportHandler(base *BaseHandler, exporter Exporter) *ReportHandler {
	return &ReportHandler{BaseHandler: base, exporter: exporter}
}

// Export streams the rendered file, or acknowledges a report that the
// renderer delivered itself.
func (h *ReportHandler) Export(c *gin.Context) {
	var req dto.ReportRequest
	if !h.BindJSON(c, &req) {
		return
	}

	out, err := h.exporter.Export(c.Request.Context(), req.ToConfiguration())
	if err != nil {
		h.Error(c, err)
		return
	}

	if len(out.Body) == 0 {
		h.OK(c, dto.ReportAckResponse{FileName: out.FileName})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, out.FileName))
	c.Data(http.StatusOK, out.ContentType, out.Body)
}
