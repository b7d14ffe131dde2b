package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/whereizit-service/internal/domain"
	"github.com/whereizit-service/internal/domain/repository"
	"github.com/whereizit-service/internal/pkg/errors"
	"github.com/whereizit-service/internal/pkg/utils"
	"github.com/whereizit-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// MarkerHandler отдаёт зеркало маркеров и принимает жесты по карте.
// Жесты не обрабатываются тут же: они публикуются в стрим и применяются
// sync-воркером, единственным владельцем состояния маркеров.
type MarkerHandler struct {
	markerBoard repository.MarkerBoardRepository
	streamRepo  repository.StreamRepository
	logger      *zap.Logger
}

// NewMarkerHandler - создание нового MarkerHandler
func NewMarkerHandler(
	markerBoard repository.MarkerBoardRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *MarkerHandler {
	return &MarkerHandler{
		markerBoard: markerBoard,
		streamRepo:  streamRepo,
		logger:      logger,
	}
}

// List - текущий набор маркеров на карте
func (h *MarkerHandler) List(c *fiber.Ctx) error {
	markers, err := h.markerBoard.Snapshot(c.Context())
	if err != nil {
		h.logger.Error("Failed to read marker board", zap.Error(err))
		return utils.SendError(c, errors.ErrCacheError)
	}

	resp := make([]dto.MarkerResponse, 0, len(markers))
	for _, m := range markers {
		category := ""
		if m.Area != nil {
			category = m.Area.Category.String()
		}
		resp = append(resp, dto.MarkerResponse{
			ID:       m.ID,
			Lat:      m.Lat,
			Lng:      m.Lng,
			Icon:     m.Icon,
			Category: category,
		})
	}

	return utils.SendSuccess(c, fiber.Map{
		"markers": resp,
	}, &utils.Meta{
		Total: len(resp),
	})
}

// Tap - тап по маркеру
func (h *MarkerHandler) Tap(c *fiber.Ctx) error {
	markerID := c.Params("id")
	if markerID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	err := h.streamRepo.Publish(c.Context(), domain.StreamMapGestures, domain.GestureEvent{
		Kind:     domain.GestureMarkerTap,
		MarkerID: markerID,
	})
	if err != nil {
		h.logger.Error("Failed to publish marker tap",
			zap.String("marker_id", markerID), zap.Error(err))
		return utils.SendError(c, errors.ErrStreamError)
	}

	return utils.SendSuccess(c, fiber.Map{"accepted": true}, nil)
}

// BackgroundTap - тап по пустому месту карты
func (h *MarkerHandler) BackgroundTap(c *fiber.Ctx) error {
	err := h.streamRepo.Publish(c.Context(), domain.StreamMapGestures, domain.GestureEvent{
		Kind: domain.GestureBackgroundTap,
	})
	if err != nil {
		h.logger.Error("Failed to publish background tap", zap.Error(err))
		return utils.SendError(c, errors.ErrStreamError)
	}

	return utils.SendSuccess(c, fiber.Map{"accepted": true}, nil)
}
