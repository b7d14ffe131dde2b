package repository

import (
	"context"

	"github.com/whereizit-service/internal/domain"
)

// MarkerBoardRepository - читаемое зеркало маркеров, которое ведёт
// sync-воркер
type MarkerBoardRepository interface {
	// Snapshot возвращает текущий набор маркеров на карте
	Snapshot(ctx context.Context) ([]*domain.Marker, error)
}
