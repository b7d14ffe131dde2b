package firestore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/whereizit-service/internal/config"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// NewClient создаёт клиент Firestore. С файлом учётных данных - из него,
// иначе - default credentials окружения (Cloud Run и т.п.).
func NewClient(ctx context.Context, cfg *config.FirestoreConfig, logger *zap.Logger) (*firestore.Client, error) {
	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err == nil {
			client, err := firestore.NewClient(ctx, cfg.ProjectID, option.WithCredentialsFile(cfg.CredentialsFile))
			if err != nil {
				return nil, fmt.Errorf("failed to create firestore client: %w", err)
			}
			logger.Info("Firestore client initialized",
				zap.String("project_id", cfg.ProjectID),
				zap.String("credentials_file", cfg.CredentialsFile))
			return client, nil
		}
		logger.Warn("Credentials file not found, falling back to default credentials",
			zap.String("credentials_file", cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	logger.Info("Firestore client initialized",
		zap.String("project_id", cfg.ProjectID))
	return client, nil
}
