package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/whereizit-service/internal/domain"
	"github.com/whereizit-service/internal/domain/repository"
	"go.uber.org/zap"
)

const markerBoardKey = "map:markers"

// MarkerBoard - серверное зеркало поверхности карты в redis-хэше.
// Реализует domain.MapSurface для sync-воркера и
// repository.MarkerBoardRepository для чтения из API; события камеры
// уходят в стрим UI-эффектов.
type MarkerBoard struct {
	client  *redis.Client
	streams repository.StreamRepository
	logger  *zap.Logger
}

// NewMarkerBoard создает новый MarkerBoard
func NewMarkerBoard(r *Redis, streams repository.StreamRepository) *MarkerBoard {
	return &MarkerBoard{
		client:  r.Client(),
		streams: streams,
		logger:  r.logger,
	}
}

// Clear удаляет всю доску. Хэш долговечен и переживает рестарты воркера;
// без очистки область, удалённая пока воркер не работал, осталась бы на
// доске навсегда.
func (b *MarkerBoard) Clear(ctx context.Context) error {
	if err := b.client.Del(ctx, markerBoardKey).Err(); err != nil {
		return fmt.Errorf("failed to clear marker board: %w", err)
	}

	b.logger.Info("Marker board cleared")
	return nil
}

// AddMarker размещает маркер на доске
func (b *MarkerBoard) AddMarker(ctx context.Context, marker *domain.Marker) error {
	data, err := json.Marshal(marker)
	if err != nil {
		return fmt.Errorf("failed to marshal marker %s: %w", marker.ID, err)
	}

	if err := b.client.HSet(ctx, markerBoardKey, marker.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to add marker %s: %w", marker.ID, err)
	}

	b.logger.Debug("Marker added", zap.String("marker_id", marker.ID))
	return nil
}

// RemoveMarker снимает маркер с доски
func (b *MarkerBoard) RemoveMarker(ctx context.Context, markerID string) error {
	if err := b.client.HDel(ctx, markerBoardKey, markerID).Err(); err != nil {
		return fmt.Errorf("failed to remove marker %s: %w", markerID, err)
	}

	b.logger.Debug("Marker removed", zap.String("marker_id", markerID))
	return nil
}

// MoveCamera публикует событие перемещения камеры в стрим эффектов
func (b *MarkerBoard) MoveCamera(ctx context.Context, lat, lng float64, eased bool) error {
	return b.streams.Publish(ctx, domain.StreamMapEffects, domain.EffectEvent{
		Kind:  domain.EffectMoveCamera,
		Lat:   lat,
		Lng:   lng,
		Eased: eased,
	})
}

// Snapshot возвращает текущий набор маркеров
func (b *MarkerBoard) Snapshot(ctx context.Context) ([]*domain.Marker, error) {
	entries, err := b.client.HGetAll(ctx, markerBoardKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read marker board: %w", err)
	}

	markers := make([]*domain.Marker, 0, len(entries))
	for markerID, raw := range entries {
		var marker domain.Marker
		if err := json.Unmarshal([]byte(raw), &marker); err != nil {
			b.logger.Warn("Skipping malformed marker entry",
				zap.String("marker_id", markerID), zap.Error(err))
			continue
		}
		markers = append(markers, &marker)
	}

	return markers, nil
}
