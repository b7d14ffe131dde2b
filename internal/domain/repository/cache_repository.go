package repository

import (
	"context"
	"time"
)

// CacheRepository - байтовый кэш с TTL
type CacheRepository interface {
	// Get возвращает значение или nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete инвалидирует ключ
	Delete(ctx context.Context, key string) error
}
