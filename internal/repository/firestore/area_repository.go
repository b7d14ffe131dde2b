package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/whereizit-service/internal/domain"
	"github.com/whereizit-service/internal/domain/repository"
	apperrors "github.com/whereizit-service/internal/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type areaRepository struct {
	client *firestore.Client
	logger *zap.Logger
}

// NewAreaRepository создает новый AreaRepository поверх Firestore
func NewAreaRepository(client *firestore.Client, logger *zap.Logger) repository.AreaRepository {
	return &areaRepository{
		client: client,
		logger: logger,
	}
}

// Subscribe открывает snapshot-подписку на коллекцию областей и транслирует
// её пакеты дельт в доменные DocumentChange. Порядок дельт внутри пакета
// сохраняется как доставлен хранилищем.
func (r *areaRepository) Subscribe(ctx context.Context) (<-chan []domain.DocumentChange, error) {
	ch := make(chan []domain.DocumentChange, 16)

	go func() {
		defer close(ch)

		snapshots := r.client.Collection(domain.AreasCollection).Snapshots(ctx)
		defer snapshots.Stop()

		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if ctx.Err() != nil {
					r.logger.Info("Area subscription stopped")
					return
				}
				r.logger.Error("Area snapshot listener failed", zap.Error(err))
				return
			}

			changes := make([]domain.DocumentChange, 0, len(snapshot.Changes))
			for _, change := range snapshot.Changes {
				changes = append(changes, domain.DocumentChange{
					Kind:       changeKind(change.Kind),
					DocumentID: change.Doc.Ref.ID,
					Fields:     change.Doc.Data(),
				})
			}

			if len(changes) == 0 {
				continue
			}

			select {
			case ch <- changes:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// Upsert записывает область под её document ID
func (r *areaRepository) Upsert(ctx context.Context, area *domain.Area) error {
	if area.DocumentID == "" {
		return fmt.Errorf("area document ID is empty")
	}

	_, err := r.client.Collection(domain.AreasCollection).Doc(area.DocumentID).Set(ctx, area.Fields())
	if err != nil {
		return fmt.Errorf("failed to upsert area %s: %w", area.DocumentID, err)
	}

	r.logger.Debug("Area upserted", zap.String("document_id", area.DocumentID))
	return nil
}

// Delete удаляет документ области. Прекондиция Exists отличает
// несуществующий документ от сбоя хранилища
func (r *areaRepository) Delete(ctx context.Context, documentID string) error {
	_, err := r.client.Collection(domain.AreasCollection).Doc(documentID).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return apperrors.ErrAreaNotFound
		}
		return fmt.Errorf("failed to delete area %s: %w", documentID, err)
	}

	r.logger.Debug("Area deleted", zap.String("document_id", documentID))
	return nil
}

// List возвращает все корректно разбираемые области
func (r *areaRepository) List(ctx context.Context) ([]*domain.Area, error) {
	docs := r.client.Collection(domain.AreasCollection).Documents(ctx)
	return r.collect(docs)
}

// ListByUploader возвращает области, созданные пользователем
func (r *areaRepository) ListByUploader(ctx context.Context, email string) ([]*domain.Area, error) {
	docs := r.client.Collection(domain.AreasCollection).
		Where("uploadUser", "==", email).
		Documents(ctx)
	return r.collect(docs)
}

func (r *areaRepository) collect(docs *firestore.DocumentIterator) ([]*domain.Area, error) {
	defer docs.Stop()

	var areas []*domain.Area
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate areas: %w", err)
		}

		area, parseErr := domain.ParseArea(doc.Ref.ID, doc.Data())
		if parseErr != nil {
			r.logger.Warn("Skipping malformed area document",
				zap.String("document_id", doc.Ref.ID),
				zap.Error(parseErr))
			continue
		}
		areas = append(areas, area)
	}

	return areas, nil
}

func changeKind(kind firestore.DocumentChangeKind) domain.ChangeKind {
	switch kind {
	case firestore.DocumentAdded:
		return domain.ChangeAdded
	case firestore.DocumentModified:
		return domain.ChangeModified
	case firestore.DocumentRemoved:
		return domain.ChangeRemoved
	default:
		return domain.ChangeModified
	}
}
