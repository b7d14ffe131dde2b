package repository

import "context"

// BlobRepository - хранилище бинарных объектов (фотографии областей)
type BlobRepository interface {
	// Upload загружает объект и возвращает постоянный URL для чтения
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)

	// Delete удаляет объект по его URL
	Delete(ctx context.Context, url string) error
}
