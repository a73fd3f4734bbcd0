package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/isp/backend/internal/infrastructure/config"
	"github.com/isp/backend/internal/infrastructure/logger"
	"github.com/isp/backend/internal/interfaces/http/handler"
	"github.com/isp/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	Plans     *handler.PlanHandler
	Customers *handler.CustomerHandler
	Usage     *handler.UsageHandler
	Invoices  *handler.InvoiceHandler
	Profile   *handler.ProfileHandler
	Reports   *handler.ReportHandler
	Bundles   *handler.BundleHandler
}

// New builds the gin engine with the full middleware chain and all
// API routes mounted under /api/v1
func New(cfg *config.Config, zapLogger *zap.Logger, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(zapLogger),
		logger.Recovery(zapLogger),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		}),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.App.Name})
	})

	api := engine.Group("/api/v1")

	plans := api.Group("/plans")
	{
		plans.GET("", h.Plans.List)
		plans.POST("", h.Plans.Create)
		plans.GET("/:id", h.Plans.Get)
		plans.PUT("/:id", h.Plans.Update)
		plans.DELETE("/:id", h.Plans.Delete)
	}

	customers := api.Group("/customers")
	{
		customers.GET("", h.Customers.List)
		customers.POST("", h.Customers.Create)
		customers.GET("/:id", h.Customers.Get)
		customers.PUT("/:id", h.Customers.Update)
		customers.DELETE("/:id", h.Customers.Delete)
	}

	usage := api.Group("/usage")
	{
		usage.GET("", h.Usage.List)
		usage.POST("", h.Usage.Create)
		usage.DELETE("/:id", h.Usage.Delete)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", h.Invoices.List)
		invoices.POST("", h.Invoices.Create)
		invoices.POST("/compute", h.Invoices.Compute)
		invoices.GET("/:id", h.Invoices.Get)
		invoices.POST("/:id/pay", h.Invoices.MarkPaid)
		invoices.DELETE("/:id", h.Invoices.Delete)
	}

	api.GET("/profile", h.Profile.Get)
	api.PUT("/profile", h.Profile.Update)

	api.GET("/reports/summary", h.Reports.Summary)

	api.GET("/bundle", h.Bundles.Export)
	api.POST("/bundle", h.Bundles.Import)
	api.POST("/system/reset", h.Bundles.Reset)

	return engine
}
