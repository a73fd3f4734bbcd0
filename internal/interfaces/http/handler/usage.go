package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appbilling "github.com/isp/backend/internal/application/billing"
	"github.com/isp/backend/internal/interfaces/http/dto"
)

// UsageHandler handles metered-usage endpoints
type UsageHandler struct {
	BaseHandler
	usageService *appbilling.UsageService
}

// NewUsageHandler creates a new UsageHandler
func NewUsageHandler(usageService *appbilling.UsageService) *UsageHandler {
	return &UsageHandler{usageService: usageService}
}

// List handles GET /api/v1/usage with optional customerId, start and
// end query parameters
func (h *UsageHandler) List(c *gin.Context) {
	filter := appbilling.UsageFilter{
		Start: c.Query("start"),
		End:   c.Query("end"),
	}
	if raw := c.Query("customerId"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, "Invalid customerId filter")
			return
		}
		filter.CustomerID = &customerID
	}

	records, err := h.usageService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, records)
}

// Create handles POST /api/v1/usage
func (h *UsageHandler) Create(c *gin.Context) {
	var req appbilling.RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	record, err := h.usageService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, record)
}

// Delete handles DELETE /api/v1/usage/:id
func (h *UsageHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.usageService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
