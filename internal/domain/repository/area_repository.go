package repository

import (
	"context"

	"github.com/whereizit-service/internal/domain"
)

// AreaRepository - доступ к коллекции областей в удалённом хранилище
// документов
type AreaRepository interface {
	// Subscribe открывает живую подписку на коллекцию. Канал доставляет
	// пакеты дельт в порядке, определённом хранилищем, и закрывается при
	// отмене контекста или обрыве подписки.
	Subscribe(ctx context.Context) (<-chan []domain.DocumentChange, error)

	// Upsert записывает область под её document ID (создание и
	// редактирование - одна операция)
	Upsert(ctx context.Context, area *domain.Area) error

	// Delete удаляет документ области; удаление вернётся эхом через
	// подписку
	Delete(ctx context.Context, documentID string) error

	// List возвращает все корректно разбираемые области коллекции
	List(ctx context.Context) ([]*domain.Area, error)

	// ListByUploader возвращает области, созданные указанным пользователем
	ListByUploader(ctx context.Context, email string) ([]*domain.Area, error)
}
