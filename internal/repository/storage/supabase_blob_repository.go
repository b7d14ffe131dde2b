package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/whereizit-service/internal/config"
	"github.com/whereizit-service/internal/domain/repository"
	"go.uber.org/zap"
)

type blobRepository struct {
	client *storage_go.Client
	bucket string
	logger *zap.Logger
}

// NewBlobRepository создает новый BlobRepository поверх Supabase Storage
func NewBlobRepository(cfg *config.StorageConfig, logger *zap.Logger) repository.BlobRepository {
	client := storage_go.NewClient(cfg.URL, cfg.APIKey, nil)

	return &blobRepository{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}
}

// Upload загружает объект и возвращает его публичный URL.
// Клиент хранилища не принимает контекст; ctx оставлен для контракта.
func (r *blobRepository) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	_, err := r.client.UploadFile(r.bucket, objectPath, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload blob %s: %w", objectPath, err)
	}

	url := r.client.GetPublicUrl(r.bucket, objectPath).SignedURL

	r.logger.Info("Blob uploaded",
		zap.String("object_path", objectPath),
		zap.Int("size_bytes", len(data)))
	return url, nil
}

// Delete удаляет объект по его публичному URL
func (r *blobRepository) Delete(ctx context.Context, url string) error {
	objectPath, err := r.objectPathFromURL(url)
	if err != nil {
		return err
	}

	if _, err := r.client.RemoveFile(r.bucket, []string{objectPath}); err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", objectPath, err)
	}

	r.logger.Info("Blob deleted", zap.String("object_path", objectPath))
	return nil
}

func (r *blobRepository) objectPathFromURL(url string) (string, error) {
	marker := "/" + r.bucket + "/"
	idx := strings.LastIndex(url, marker)
	if idx < 0 {
		return "", fmt.Errorf("url %q does not reference bucket %q", url, r.bucket)
	}
	return url[idx+len(marker):], nil
}
