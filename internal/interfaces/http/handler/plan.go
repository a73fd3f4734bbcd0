package handler

import (
	"github.com/gin-gonic/gin"
	appbilling "github.com/isp/backend/internal/application/billing"
)

// PlanHandler handles plan endpoints
type PlanHandler struct {
	BaseHandler
	planService *appbilling.PlanService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planService *appbilling.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// List handles GET /api/v1/plans
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.planService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, plans)
}

// Get handles GET /api/v1/plans/:id
func (h *PlanHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	plan, err := h.planService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, plan)
}

// Create handles POST /api/v1/plans
func (h *PlanHandler) Create(c *gin.Context) {
	var req appbilling.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	plan, err := h.planService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, plan)
}

// Update handles PUT /api/v1/plans/:id
func (h *PlanHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req appbilling.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	plan, err := h.planService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, plan)
}

// Delete handles DELETE /api/v1/plans/:id
func (h *PlanHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.planService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
