package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/whereizit-service/internal/config"
	"github.com/whereizit-service/internal/pkg/logger"
	"github.com/whereizit-service/internal/repository/cache"
	"github.com/whereizit-service/internal/repository/firestore"
	redisRepo "github.com/whereizit-service/internal/repository/redis"
	"github.com/whereizit-service/internal/usecase"
	"github.com/whereizit-service/internal/worker"
	"github.com/whereizit-service/internal/worker/area"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Area Sync Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("gesture_batch_size", cfg.Worker.GestureBatchSize),
		zap.Duration("stream_read_timeout", cfg.Worker.StreamReadTimeout))

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

	// 5. Initialize repositories
	areaRepo := firestore.NewAreaRepository(fsClient, log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)
	markerBoard := cache.NewMarkerBoard(redisClient, streamRepo)
	panels := redisRepo.NewPanelPresenter(streamRepo)

	// 6. Initialize use cases
	syncUC := usecase.NewMarkerSyncUseCase(markerBoard, panels, log)

	// 7. Initialize workers
	syncWorker := area.NewSyncWorker(
		areaRepo,
		streamRepo,
		syncUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.GestureBatchSize,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewManager(log)
	workerManager.Register(syncWorker)

	// 9. Setup graceful shutdown
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
