package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	appbilling "github.com/isp/backend/internal/application/billing"
	"github.com/isp/backend/internal/infrastructure/logger"
	"github.com/isp/backend/internal/interfaces/http/dto"
)

// BundleHandler handles full-state export, import and reset endpoints
type BundleHandler struct {
	BaseHandler
	bundleService *appbilling.BundleService
}

// NewBundleHandler creates a new BundleHandler
func NewBundleHandler(bundleService *appbilling.BundleService) *BundleHandler {
	return &BundleHandler{bundleService: bundleService}
}

// Export handles GET /api/v1/bundle
func (h *BundleHandler) Export(c *gin.Context) {
	bundle, err := h.bundleService.Export(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	// The bundle itself is the payload, not wrapped in the response
	// envelope, so an exported file can be re-imported verbatim.
	c.Header("Content-Disposition", `attachment; filename="isp-billing-bundle.json"`)
	c.JSON(http.StatusOK, bundle)
}

// Import handles POST /api/v1/bundle
func (h *BundleHandler) Import(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, "Unable to read request body")
		return
	}

	bundle, err := h.bundleService.Import(c.Request.Context(), payload)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	logger.GetGinLogger(c).Info("bundle imported")
	h.Success(c, bundle)
}

// Reset handles POST /api/v1/system/reset
func (h *BundleHandler) Reset(c *gin.Context) {
	if err := h.bundleService.Reset(c.Request.Context()); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	logger.GetGinLogger(c).Warn("store reset to seed data")
	h.NoContent(c)
}
