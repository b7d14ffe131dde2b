package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/whereizit-service/internal/domain"
	"github.com/whereizit-service/internal/domain/repository"
	"go.uber.org/zap"
)

type reportRepository struct {
	client *firestore.Client
	logger *zap.Logger
}

// NewReportRepository создает новый ReportRepository поверх Firestore
func NewReportRepository(client *firestore.Client, logger *zap.Logger) repository.ReportRepository {
	return &reportRepository{
		client: client,
		logger: logger,
	}
}

// Submit сохраняет жалобу под автогенерируемым ID
func (r *reportRepository) Submit(ctx context.Context, report *domain.Report) (string, error) {
	ref, _, err := r.client.Collection(domain.ReportsCollection).Add(ctx, report.Fields())
	if err != nil {
		return "", fmt.Errorf("failed to submit report: %w", err)
	}

	r.logger.Info("Report submitted",
		zap.String("report_id", ref.ID),
		zap.String("reported_area_id", report.ReportedAreaID))
	return ref.ID, nil
}
