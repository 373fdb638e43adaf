package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"villa-api-backend/config"
	"villa-api-backend/internal/api"
	"villa-api-backend/internal/db"
	"villa-api-backend/internal/logging"
	"villa-api-backend/internal/metrics"
	"villa-api-backend/internal/repository"
	"villa-api-backend/internal/seed"
	"villa-api-backend/internal/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:       cfg.Log.Level,
		Environment: logging.Environment(cfg.Log.Environment),
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("configuration loaded", zap.String("path", configPath))

	if cfg.Log.Environment == string(logging.EnvironmentProduction) {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := metrics.Init(); err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	gormDB, err := db.Init(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	villas := repository.NewVillaRepository(gormDB)
	numbers := repository.NewVillaNumberRepository(gormDB, villas)

	if _, err := seed.NewService(&cfg.Seed, villas, logger).Run(ctx); err != nil {
		logger.Fatal("failed to seed villas", zap.Error(err))
	}

	handler := api.NewHandler(
		service.NewVillaService(villas, cfg.Server.MaxPageSize, logger),
		service.NewVillaNumberService(numbers, cfg.Server.MaxPageSize, logger),
	)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.NewRouter(cfg, handler, gormDB, logger),
	}

	go func() {
		logger.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server ListenAndServe", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutdown signal received, stopping server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownSeconds)*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("HTTP server Shutdown", zap.Error(err))
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server gracefully stopped")
}
