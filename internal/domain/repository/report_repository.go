package repository

import (
	"context"

	"github.com/whereizit-service/internal/domain"
)

// ReportRepository - коллекция жалоб модерации
type ReportRepository interface {
	// Submit сохраняет жалобу под автогенерируемым ID и возвращает его
	Submit(ctx context.Context, report *domain.Report) (string, error)
}
