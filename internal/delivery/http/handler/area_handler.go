package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/whereizit-service/internal/delivery/http/middleware"
	"github.com/whereizit-service/internal/pkg/errors"
	"github.com/whereizit-service/internal/pkg/utils"
	"github.com/whereizit-service/internal/pkg/validator"
	"github.com/whereizit-service/internal/usecase"
	"github.com/whereizit-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// AreaHandler - обработчик запросов областей
type AreaHandler struct {
	submitUC *usecase.SubmitAreaUseCase
	queryUC  *usecase.AreaQueryUseCase
	logger   *zap.Logger
}

// NewAreaHandler - создание нового AreaHandler
func NewAreaHandler(
	submitUC *usecase.SubmitAreaUseCase,
	queryUC *usecase.AreaQueryUseCase,
	logger *zap.Logger,
) *AreaHandler {
	return &AreaHandler{
		submitUC: submitUC,
		queryUC:  queryUC,
		logger:   logger,
	}
}

// Submit - сохранение черновика области (создание или редактирование)
func (h *AreaHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.submitUC.Submit(c.Context(), middleware.PrincipalFromCtx(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Delete - удаление области по ID документа
func (h *AreaHandler) Delete(c *fiber.Ctx) error {
	documentID := c.Params("id")

	if err := h.submitUC.Delete(c.Context(), documentID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"document_id": documentID}, nil)
}

// Nearby - список областей, упорядоченный по дистанции до пользователя
func (h *AreaHandler) Nearby(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	areas, err := h.queryUC.Nearby(c.Context(), lat, lng)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"areas": areas,
	}, &utils.Meta{
		Total: len(areas),
	})
}

// Mine - области, загруженные текущим пользователем
func (h *AreaHandler) Mine(c *fiber.Ctx) error {
	areas, err := h.queryUC.Mine(c.Context(), middleware.PrincipalFromCtx(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"areas": areas,
	}, &utils.Meta{
		Total: len(areas),
	})
}

// Categories - закрытый набор категорий со словарями тегов для формы ввода
func (h *AreaHandler) Categories(c *fiber.Ctx) error {
	categories := h.queryUC.Categories()

	return utils.SendSuccess(c, fiber.Map{
		"categories": categories,
	}, &utils.Meta{
		Total: len(categories),
	})
}

// UploadPhoto - загрузка фотографии области, возвращает постоянный URL
func (h *AreaHandler) UploadPhoto(c *fiber.Ctx) error {
	data := c.Body()
	if len(data) == 0 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.submitUC.UploadPhoto(c.Context(), data, c.Get(fiber.HeaderContentType))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
