package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/isp/backend/internal/application/report"
)

// ReportHandler handles dashboard reporting endpoints
type ReportHandler struct {
	BaseHandler
	summaryService *report.SummaryService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(summaryService *report.SummaryService) *ReportHandler {
	return &ReportHandler{summaryService: summaryService}
}

// Summary handles GET /api/v1/reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.summaryService.Summary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, summary)
}
