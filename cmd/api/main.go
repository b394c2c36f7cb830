package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"

	"go.uber.org/zap"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Health, diagnostic and contact form endpoints for a personal portfolio site.
// @host            localhost:8000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	logger.Log.Info("Starting portfolio backend", zap.String("port", cfg.Port))

	// 3. Setup Database. The service still starts without one; /test reports it.
	var store domain.DocumentStore
	if cfg.DatabaseConfigured() {
		store, err = repository.OpenDocumentStore(context.Background(), cfg)
		if err != nil {
			logger.Log.Warn("Database unavailable", zap.Error(err))
			store = nil
		}
	} else {
		logger.Log.Warn("DATABASE_URL or DATABASE_NAME not set - contact form will be unavailable")
	}

	// 4. Setup UseCases
	healthUC := usecase.NewHealthUsecase()
	contactUC := usecase.NewContactUsecase(store)
	diagnosticUC := usecase.NewDiagnosticUsecase(store, usecase.DiagnosticSettings{
		DatabaseURLSet:  cfg.DatabaseURL != "",
		DatabaseNameSet: cfg.DatabaseName != "",
		Timeout:         cfg.DiagnosticTimeout(),
	})

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		HealthUC:     healthUC,
		DiagnosticUC: diagnosticUC,
		ContactUC:    contactUC,
		Schema:       validation.NewSchema(),
		Logger:       logger.Log,
		Config:       cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Listen failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if store != nil {
		if err := store.Close(ctx); err != nil {
			logger.Log.Warn("Database close failed", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
