package usecase

import (
	"context"
	"time"

	"github.com/whereizit-service/internal/domain"
	"github.com/whereizit-service/internal/domain/repository"
	"github.com/whereizit-service/internal/pkg/errors"
	"github.com/whereizit-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// ReportUseCase - приём жалоб модерации на области
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	logger     *zap.Logger
}

// NewReportUseCase создает новый ReportUseCase
func NewReportUseCase(reportRepo repository.ReportRepository, logger *zap.Logger) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Submit регистрирует жалобу. Пустая причина заменяется причиной по
// умолчанию, анонимные поля - значением "unknown".
func (uc *ReportUseCase) Submit(
	ctx context.Context,
	principal *domain.Principal,
	req dto.SubmitReportRequest,
) (*dto.SubmitReportResponse, error) {
	reportedAreaID := req.ReportedAreaID
	if reportedAreaID == "" {
		reportedAreaID = "unknown"
	}

	reportedBy := "unknown"
	if principal != nil && principal.Email != "" {
		reportedBy = principal.Email
	}

	reason := req.Reason
	if reason == "" {
		reason = domain.DefaultReportReason
	}

	report := &domain.Report{
		ReportedAreaID: reportedAreaID,
		ReportedName:   req.ReportedName,
		ReportedBy:     reportedBy,
		Reason:         reason,
		Timestamp:      time.Now(),
	}

	reportID, err := uc.reportRepo.Submit(ctx, report)
	if err != nil {
		uc.logger.Error("Failed to submit report",
			zap.String("reported_area_id", reportedAreaID), zap.Error(err))
		return nil, errors.ErrRemoteStoreError
	}

	return &dto.SubmitReportResponse{ReportID: reportID}, nil
}
