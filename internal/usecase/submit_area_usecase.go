package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/whereizit-service/internal/domain"
	"github.com/whereizit-service/internal/domain/repository"
	"github.com/whereizit-service/internal/pkg/errors"
	"github.com/whereizit-service/internal/pkg/utils"
	"github.com/whereizit-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// SubmitAreaUseCase - путь сохранения области: валидация черновика,
// upsert в удалённое хранилище, загрузка фотографий
type SubmitAreaUseCase struct {
	areaRepo  repository.AreaRepository
	blobRepo  repository.BlobRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

// NewSubmitAreaUseCase создает новый SubmitAreaUseCase
func NewSubmitAreaUseCase(
	areaRepo repository.AreaRepository,
	blobRepo repository.BlobRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *SubmitAreaUseCase {
	return &SubmitAreaUseCase{
		areaRepo:  areaRepo,
		blobRepo:  blobRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// Submit валидирует черновик и делает upsert области. Обязательны: имя,
// описание (не равное тексту-подсказке), координаты и категория; иначе
// запись не выполняется. Для новой области ID документа выводится из
// координат, при редактировании сохраняется как есть.
func (uc *SubmitAreaUseCase) Submit(
	ctx context.Context,
	principal *domain.Principal,
	req dto.SubmitAreaRequest,
) (*dto.SubmitAreaResponse, error) {
	if req.Name == nil || *req.Name == "" ||
		req.Description == nil || *req.Description == "" ||
		*req.Description == domain.DescriptionPlaceholder ||
		req.Lat == nil || req.Lng == nil ||
		req.Category == nil {
		return nil, errors.ErrMissingAreaFields
	}

	if !utils.ValidateCoordinates(*req.Lat, *req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	documentID := req.DocumentID
	if documentID == "" {
		documentID = domain.DeriveDocumentID(*req.Lat, *req.Lng)
	}

	// Только что загруженный URL важнее ранее сохранённого (редактирование),
	// тот - важнее отсутствия фотографии
	imageURL := ""
	switch {
	case req.UploadedImageURL != nil && *req.UploadedImageURL != "":
		imageURL = *req.UploadedImageURL
	case req.PreviousImageURL != nil && *req.PreviousImageURL != "":
		imageURL = *req.PreviousImageURL
	}

	uploadUser := "Unknown"
	if principal != nil && principal.Email != "" {
		uploadUser = principal.Email
	}

	category := domain.ParseCategory(*req.Category)

	area := &domain.Area{
		DocumentID:  documentID,
		ImageURL:    imageURL,
		Name:        *req.Name,
		Description: *req.Description,
		AreaLat:     *req.Lat,
		AreaLng:     *req.Lng,
		Category:    category,
		// Теги вне словаря категории в документ не попадают
		EnvironmentTags: domain.FilterTags(category, domain.TagAxisEnvironment, req.EnvironmentTags),
		TypeTags:        domain.FilterTags(category, domain.TagAxisType, req.TypeTags),
		FacilityTags:    domain.FilterTags(category, domain.TagAxisFacility, req.FacilityTags),
		UploadUser:      uploadUser,
		UploadDate:      time.Now(),
	}

	if err := uc.areaRepo.Upsert(ctx, area); err != nil {
		uc.logger.Error("Failed to upsert area",
			zap.String("document_id", documentID), zap.Error(err))
		return nil, errors.ErrRemoteStoreError
	}

	uc.invalidateAreaList(ctx)

	return &dto.SubmitAreaResponse{DocumentID: documentID}, nil
}

// Delete удаляет область; удаление вернётся эхом через подписку и снимет
// маркер
func (uc *SubmitAreaUseCase) Delete(ctx context.Context, documentID string) error {
	if documentID == "" {
		return errors.ErrInvalidRequest
	}

	if err := uc.areaRepo.Delete(ctx, documentID); err != nil {
		if err == errors.ErrAreaNotFound {
			return err
		}
		uc.logger.Error("Failed to delete area",
			zap.String("document_id", documentID), zap.Error(err))
		return errors.ErrRemoteStoreError
	}

	uc.invalidateAreaList(ctx)
	return nil
}

// UploadPhoto загружает фотографию области и возвращает постоянный URL.
// TODO: удалять blob, если область с этим URL так и не была сохранена
func (uc *SubmitAreaUseCase) UploadPhoto(
	ctx context.Context,
	data []byte,
	contentType string,
) (*dto.UploadPhotoResponse, error) {
	if len(data) == 0 {
		return nil, errors.ErrInvalidRequest
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	objectPath := fmt.Sprintf("%s/%s.jpg", domain.AreasCollection, uuid.New().String())

	url, err := uc.blobRepo.Upload(ctx, objectPath, data, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload photo",
			zap.String("object_path", objectPath), zap.Error(err))
		return nil, errors.ErrBlobStoreError
	}

	return &dto.UploadPhotoResponse{ImageURL: url}, nil
}

// invalidateAreaList сбрасывает кэш списка областей после записи
func (uc *SubmitAreaUseCase) invalidateAreaList(ctx context.Context) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.Delete(ctx, areaListCacheKey); err != nil {
		uc.logger.Warn("Failed to invalidate area list cache", zap.Error(err))
	}
}
