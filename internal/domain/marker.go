package domain

import "context"

// Marker - экранное представление области на карте. ID совпадает с ID
// документа области.
type Marker struct {
	ID   string  `json:"id"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Icon string  `json:"icon"`
	Area *Area   `json:"area"`
}

// MapSurface - поверхность карты: размещение маркеров и управление камерой.
// Реализация должна быть безопасна при вызовах из одной горутины;
// синхронизация между несколькими мутаторами не предполагается.
type MapSurface interface {
	// Clear снимает все маркеры. Вызывается при старте подписки: набор
	// маркеров строится заново, и долговечная поверхность не должна
	// показывать маркеры прошлого запуска.
	Clear(ctx context.Context) error

	// AddMarker размещает маркер на карте
	AddMarker(ctx context.Context, marker *Marker) error

	// RemoveMarker снимает маркер с карты
	RemoveMarker(ctx context.Context, markerID string) error

	// MoveCamera перемещает камеру к координатам, опционально с плавной
	// анимацией
	MoveCamera(ctx context.Context, lat, lng float64, eased bool) error
}

// PanelPresenter управляет нижними панелями, зависящими от состояния карты
type PanelPresenter interface {
	// ShowAreaPanel показывает панель деталей области и скрывает
	// панель "рядом"
	ShowAreaPanel(ctx context.Context, area *Area) error

	// ResetPanels скрывает панель деталей и возвращает панель "рядом"
	// в свернутое состояние
	ResetPanels(ctx context.Context) error
}
