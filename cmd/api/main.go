package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/whereizit-service/internal/config"
	httpDelivery "github.com/whereizit-service/internal/delivery/http"
	"github.com/whereizit-service/internal/delivery/http/handler"
	"github.com/whereizit-service/internal/pkg/logger"
	"github.com/whereizit-service/internal/repository/cache"
	"github.com/whereizit-service/internal/repository/firestore"
	redisRepo "github.com/whereizit-service/internal/repository/redis"
	"github.com/whereizit-service/internal/repository/storage"
	"github.com/whereizit-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Whereizit Area Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to Firestore
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	fsClient, err := firestore.NewClient(ctx, &cfg.Firestore, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to connect to Firestore", zap.Error(err))
	}
	defer func() {
		if err := fsClient.Close(); err != nil {
			log.Error("Failed to close Firestore client", zap.Error(err))
		}
	}()
	log.Info("Firestore connected", zap.String("project_id", cfg.Firestore.ProjectID))

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	areaRepo := firestore.NewAreaRepository(fsClient, log)
	reportRepo := firestore.NewReportRepository(fsClient, log)
	blobRepo := storage.NewBlobRepository(&cfg.Storage, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)
	markerBoard := cache.NewMarkerBoard(redisClient, streamRepo)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	submitUC := usecase.NewSubmitAreaUseCase(
		areaRepo,
		blobRepo,
		cacheRepo,
		log,
	)

	queryUC := usecase.NewAreaQueryUseCase(
		areaRepo,
		cacheRepo,
		cfg.Cache.AreasCacheTTL,
		log,
	)

	reportUC := usecase.NewReportUseCase(
		reportRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	areaHandler := handler.NewAreaHandler(submitUC, queryUC, log)
	markerHandler := handler.NewMarkerHandler(markerBoard, streamRepo, log)
	reportHandler := handler.NewReportHandler(reportUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		areaHandler,
		markerHandler,
		reportHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
