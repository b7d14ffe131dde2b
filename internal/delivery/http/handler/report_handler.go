package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/whereizit-service/internal/delivery/http/middleware"
	"github.com/whereizit-service/internal/pkg/utils"
	"github.com/whereizit-service/internal/pkg/validator"
	"github.com/whereizit-service/internal/usecase"
	"github.com/whereizit-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// ReportHandler - обработчик жалоб модерации
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	logger   *zap.Logger
}

// NewReportHandler - создание нового ReportHandler
func NewReportHandler(reportUC *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

// Submit - регистрация жалобы на область
func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.reportUC.Submit(c.Context(), middleware.PrincipalFromCtx(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
