package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appbilling "github.com/isp/backend/internal/application/billing"
	"github.com/isp/backend/internal/application/report"
	"github.com/isp/backend/internal/infrastructure/config"
	"github.com/isp/backend/internal/infrastructure/logger"
	"github.com/isp/backend/internal/infrastructure/persistence"
	"github.com/isp/backend/internal/interfaces/http/handler"
	"github.com/isp/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	log.Info("Starting ISP billing backend",
		zap.String("env", cfg.App.Env),
		zap.String("storage", cfg.Storage.Driver),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := persistence.Open(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	if cfg.App.SeedOnBoot {
		empty, err := appbilling.IsEmpty(context.Background(), store)
		if err != nil {
			log.Fatal("Failed to inspect store", zap.Error(err))
		}
		if empty {
			if err := appbilling.Seed(context.Background(), store); err != nil {
				log.Fatal("Failed to seed store", zap.Error(err))
			}
			log.Info("Seeded starter profile, plans and demo subscribers")
		}
	}

	usageService := appbilling.NewUsageService(store)
	handlers := router.Handlers{
		Plans:     handler.NewPlanHandler(appbilling.NewPlanService(store)),
		Customers: handler.NewCustomerHandler(appbilling.NewCustomerService(store)),
		Usage:     handler.NewUsageHandler(usageService),
		Invoices:  handler.NewInvoiceHandler(appbilling.NewInvoiceService(store, usageService)),
		Profile:   handler.NewProfileHandler(appbilling.NewProfileService(store)),
		Reports:   handler.NewReportHandler(report.NewSummaryService(store)),
		Bundles:   handler.NewBundleHandler(appbilling.NewBundleService(store)),
	}

	engine := router.New(cfg, log, handlers)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
