package usecase

import (
	"context"

	"github.com/whereizit-service/internal/domain"
	"go.uber.org/zap"
)

// MarkerSyncUseCase держит соответствие "ID документа -> маркер на карте"
// в согласии с живым потоком изменений коллекции областей и разруливает
// жесты по маркерам.
//
// Не потокобезопасен: все методы должны вызываться из одной горутины
// (горутины sync-воркера). Это сознательное свойство модели - карта
// маркеров мутируется только из одного потока доставки.
type MarkerSyncUseCase struct {
	surface domain.MapSurface
	panels  domain.PanelPresenter
	logger  *zap.Logger

	markers map[string]*domain.Marker
}

// NewMarkerSyncUseCase создает новый MarkerSyncUseCase
func NewMarkerSyncUseCase(
	surface domain.MapSurface,
	panels domain.PanelPresenter,
	logger *zap.Logger,
) *MarkerSyncUseCase {
	return &MarkerSyncUseCase{
		surface: surface,
		panels:  panels,
		logger:  logger,
		markers: make(map[string]*domain.Marker),
	}
}

// Reset сбрасывает набор маркеров и очищает поверхность. Вызывается при
// открытии подписки: первый snapshot приносит все живые документы как
// added, поэтому всё, что осталось на поверхности от прошлого запуска,
// стало бы фантомом.
func (uc *MarkerSyncUseCase) Reset(ctx context.Context) error {
	if err := uc.surface.Clear(ctx); err != nil {
		return err
	}
	uc.markers = make(map[string]*domain.Marker)
	return nil
}

// ApplyChanges применяет пакет дельт подписки к набору маркеров. Дельты
// обрабатываются в порядке доставки; повторное применение того же пакета
// даёт тот же итоговый набор маркеров.
func (uc *MarkerSyncUseCase) ApplyChanges(ctx context.Context, changes []domain.DocumentChange) {
	for _, change := range changes {
		area, err := domain.ParseArea(change.DocumentID, change.Fields)
		if err != nil {
			// Битый документ пропускаем без ошибки наружу
			uc.logger.Warn("Skipping malformed area document",
				zap.String("document_id", change.DocumentID),
				zap.String("change", change.Kind.String()),
				zap.Error(err))
			continue
		}

		switch change.Kind {
		case domain.ChangeAdded:
			uc.attachMarker(ctx, area)

		case domain.ChangeModified:
			// Неизвестный ID - no-op: хранилище авторитетно и не должно
			// присылать modified до added
			if _, ok := uc.markers[change.DocumentID]; !ok {
				continue
			}
			uc.attachMarker(ctx, area)
			uc.resetPanels(ctx)

		case domain.ChangeRemoved:
			if _, ok := uc.markers[change.DocumentID]; !ok {
				continue
			}
			uc.detachMarker(ctx, change.DocumentID)
			uc.resetPanels(ctx)
		}
	}
}

// HandleMarkerTap показывает панель деталей области и подводит камеру к ней.
// Тап по уже снятому маркеру - no-op.
func (uc *MarkerSyncUseCase) HandleMarkerTap(ctx context.Context, markerID string) {
	marker, ok := uc.markers[markerID]
	if !ok {
		uc.logger.Debug("Tap on unknown marker", zap.String("marker_id", markerID))
		return
	}

	if err := uc.panels.ShowAreaPanel(ctx, marker.Area); err != nil {
		uc.logger.Error("Failed to show area panel",
			zap.String("marker_id", markerID), zap.Error(err))
	}
	if err := uc.surface.MoveCamera(ctx, marker.Lat, marker.Lng, true); err != nil {
		uc.logger.Error("Failed to move camera",
			zap.String("marker_id", markerID), zap.Error(err))
	}
}

// HandleBackgroundTap сворачивает панель деталей и возвращает панель "рядом"
func (uc *MarkerSyncUseCase) HandleBackgroundTap(ctx context.Context) {
	uc.resetPanels(ctx)
}

// MarkerCount возвращает число маркеров на карте
func (uc *MarkerSyncUseCase) MarkerCount() int {
	return len(uc.markers)
}

// attachMarker ставит маркер области, предварительно сняв старый маркер
// под тем же ID. Повторный added для живого ID не должен оставлять
// висячий маркер на поверхности.
func (uc *MarkerSyncUseCase) attachMarker(ctx context.Context, area *domain.Area) {
	if _, ok := uc.markers[area.DocumentID]; ok {
		uc.detachMarker(ctx, area.DocumentID)
	}

	marker := &domain.Marker{
		ID:   area.DocumentID,
		Lat:  area.AreaLat,
		Lng:  area.AreaLng,
		Icon: area.Category.MarkerIcon(),
		Area: area,
	}

	if err := uc.surface.AddMarker(ctx, marker); err != nil {
		uc.logger.Error("Failed to add marker",
			zap.String("document_id", area.DocumentID), zap.Error(err))
		return
	}
	uc.markers[area.DocumentID] = marker
}

func (uc *MarkerSyncUseCase) detachMarker(ctx context.Context, documentID string) {
	if err := uc.surface.RemoveMarker(ctx, documentID); err != nil {
		uc.logger.Error("Failed to remove marker",
			zap.String("document_id", documentID), zap.Error(err))
	}
	delete(uc.markers, documentID)
}

func (uc *MarkerSyncUseCase) resetPanels(ctx context.Context) {
	if err := uc.panels.ResetPanels(ctx); err != nil {
		uc.logger.Error("Failed to reset panels", zap.Error(err))
	}
}
