package area

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/whereizit-service/internal/domain"
	"github.com/whereizit-service/internal/domain/repository"
	"github.com/whereizit-service/internal/usecase"
	"github.com/whereizit-service/internal/worker"
	"go.uber.org/zap"
)

const emptyQueueSleep = 100 * time.Millisecond // пауза если жестов нет

// SyncWorker ведёт соответствие маркеров живой коллекции областей и
// обрабатывает жесты по карте. Оба источника (snapshot-подписка и стрим
// жестов) сливаются в один цикл, поэтому карта маркеров мутируется ровно
// из одной горутины.
type SyncWorker struct {
	*worker.BaseWorker
	areaRepo      repository.AreaRepository
	streamRepo    repository.StreamRepository
	syncUC        *usecase.MarkerSyncUseCase
	consumerGroup string
	consumerName  string
	batchSize     int
}

// NewSyncWorker создает новый SyncWorker
func NewSyncWorker(
	areaRepo repository.AreaRepository,
	streamRepo repository.StreamRepository,
	syncUC *usecase.MarkerSyncUseCase,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *SyncWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &SyncWorker{
		BaseWorker:    worker.NewBaseWorker("area-sync", logger),
		areaRepo:      areaRepo,
		streamRepo:    streamRepo,
		syncUC:        syncUC,
		consumerGroup: consumerGroup,
		consumerName:  consumerName,
		batchSize:     batchSize,
	}
}

// Start запускает воркер
func (w *SyncWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting area sync worker",
		zap.String("consumer_group", w.consumerGroup),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamMapGestures, w.consumerGroup); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	changes, err := w.areaRepo.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to areas: %w", err)
	}

	// Набор маркеров строится заново с первого snapshot подписки
	if err := w.syncUC.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset marker board: %w", err)
	}

	// Единый цикл обработки: дельты подписки и жесты чередуются, но
	// никогда не обрабатываются параллельно
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case batch, ok := <-changes:
			if !ok {
				return fmt.Errorf("area subscription closed")
			}
			logger.Debug("Applying change batch", zap.Int("change_count", len(batch)))
			w.syncUC.ApplyChanges(ctx, batch)

		default:
			processed, err := w.processGestures(ctx)
			if err != nil {
				logger.Error("Failed to process gestures", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			// Если жестов не было - короткая пауза
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processGestures читает и применяет пакет жестов из стрима
func (w *SyncWorker) processGestures(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamMapGestures,
		w.consumerGroup,
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume gestures: %w", err)
	}

	for _, msg := range messages {
		var gesture domain.GestureEvent
		if err := json.Unmarshal([]byte(msg.Data), &gesture); err != nil {
			logger.Warn("Skipping malformed gesture message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamMapGestures, w.consumerGroup, msg.ID)
			continue
		}

		switch gesture.Kind {
		case domain.GestureMarkerTap:
			w.syncUC.HandleMarkerTap(ctx, gesture.MarkerID)
		case domain.GestureBackgroundTap:
			w.syncUC.HandleBackgroundTap(ctx)
		default:
			logger.Warn("Unknown gesture kind",
				zap.String("kind", string(gesture.Kind)))
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamMapGestures, w.consumerGroup, msg.ID); err != nil {
			logger.Error("Failed to ack gesture",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}
