package redis

import (
	"context"

	"github.com/whereizit-service/internal/domain"
	"github.com/whereizit-service/internal/domain/repository"
)

// panelPresenter транслирует команды панелям в стрим UI-эффектов
type panelPresenter struct {
	streams repository.StreamRepository
}

// NewPanelPresenter создает новый PanelPresenter поверх стрима эффектов
func NewPanelPresenter(streams repository.StreamRepository) domain.PanelPresenter {
	return &panelPresenter{streams: streams}
}

// ShowAreaPanel показывает панель деталей области (панель "рядом"
// скрывается на стороне отображения)
func (p *panelPresenter) ShowAreaPanel(ctx context.Context, area *domain.Area) error {
	return p.streams.Publish(ctx, domain.StreamMapEffects, domain.EffectEvent{
		Kind: domain.EffectShowAreaPanel,
		Area: area,
		Lat:  area.AreaLat,
		Lng:  area.AreaLng,
	})
}

// ResetPanels сворачивает панель деталей и возвращает панель "рядом"
func (p *panelPresenter) ResetPanels(ctx context.Context) error {
	return p.streams.Publish(ctx, domain.StreamMapEffects, domain.EffectEvent{
		Kind: domain.EffectResetPanels,
	})
}
