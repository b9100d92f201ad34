// Package main is the entry point for the land measurement HTTP service.
// It exposes area calculation, field validation and buhol conversion.
//
// 12-Factor App compliance:
//   - III. Config: Configuration via environment variables
//   - VI. Processes: Stateless processes
//   - VII. Port Binding: Self-contained HTTP server
//   - IX. Disposability: Graceful shutdown
//   - XI. Logs: Structured logging to stdout
//
// Usage:
//
//	go run ./cmd/api-gateway
//
// Environment Variables:
//
//	LUWANG_APP_ENVIRONMENT             - Deployment environment (development, staging, production)
//	LUWANG_SERVER_PORT                 - HTTP server port (default: 8080)
//	LUWANG_MEASUREMENT_LUWANG_AREA_SQM - Square meters per LuWang (default: 2500)
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/hapkiduki/luwang-go/internal/application/service"
	"github.com/hapkiduki/luwang-go/internal/domain/measurement"
	"github.com/hapkiduki/luwang-go/internal/infrastructure/config"
	"github.com/hapkiduki/luwang-go/internal/infrastructure/logging"
	"github.com/hapkiduki/luwang-go/internal/interfaces/http/handler"
	"github.com/hapkiduki/luwang-go/internal/interfaces/http/middleware"
	"github.com/hapkiduki/luwang-go/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

// startTime tracks when the server started for uptime calculations
var startTime = time.Now()

func main() {
	cfg := config.MustLoad()

	log := logger.MustNew(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.App.Environment == "development",
	})
	defer func() { _ = log.Sync() }()

	log.Info("Starting land measurement service",
		"version", version,
		"environment", cfg.App.Environment,
	)

	calc, err := measurement.NewCalculator(cfg.Measurement.LuwangAreaSqm)
	if err != nil {
		log.Fatal("Invalid measurement configuration", "error", err)
	}
	if cfg.Measurement.UsesProvisionalLuwang() {
		log.Warn("LuWang ratio is the provisional default; set LUWANG_MEASUREMENT_LUWANG_AREA_SQM once confirmed",
			"luwang_area_sqm", calc.LuwangAreaSqm(),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLog := logging.New(log)
	svc := service.NewMeasurementService(calc, appLog)
	measurements := handler.NewMeasurementHandler(svc, appLog)

	r := chi.NewRouter()

	// Order matters! Middleware is executed in the order added.
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(appLog))
	r.Use(middleware.Recoverer(appLog))
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "X-API-Version"},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	}))
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.APIVersion(version))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.MaxBodySize(cfg.Server.MaxRequestSize))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health(version, startTime, calc.LuwangAreaSqm()))
	r.Mount("/api/v1/measurements", measurements.Routes())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server shutdown complete")
}
