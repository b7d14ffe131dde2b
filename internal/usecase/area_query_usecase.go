package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/whereizit-service/internal/domain"
	"github.com/whereizit-service/internal/domain/repository"
	"github.com/whereizit-service/internal/pkg/errors"
	"github.com/whereizit-service/internal/pkg/utils"
	"github.com/whereizit-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const areaListCacheKey = "areas:list"

// AreaQueryUseCase - выборки областей: список "рядом" и области текущего
// пользователя
type AreaQueryUseCase struct {
	areaRepo  repository.AreaRepository
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewAreaQueryUseCase создает новый AreaQueryUseCase
func NewAreaQueryUseCase(
	areaRepo repository.AreaRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *AreaQueryUseCase {
	return &AreaQueryUseCase{
		areaRepo:  areaRepo,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Nearby возвращает все области, отсортированные по дистанции от точки
// пользователя
func (uc *AreaQueryUseCase) Nearby(ctx context.Context, lat, lng float64) ([]dto.NearbyAreaResponse, error) {
	if !utils.ValidateCoordinates(lat, lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	areas, err := uc.listAreas(ctx)
	if err != nil {
		return nil, err
	}

	from := orb.Point{lng, lat}

	result := make([]dto.NearbyAreaResponse, 0, len(areas))
	for _, area := range areas {
		distance := geo.Distance(from, orb.Point{area.AreaLng, area.AreaLat})
		result = append(result, dto.NearbyAreaResponse{
			AreaResponse:   dto.NewAreaResponse(area),
			DistanceMeters: distance,
			Distance:       utils.FormatDistance(distance),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceMeters < result[j].DistanceMeters
	})

	return result, nil
}

// Mine возвращает области, созданные текущим пользователем
func (uc *AreaQueryUseCase) Mine(ctx context.Context, principal *domain.Principal) ([]dto.AreaResponse, error) {
	if principal == nil || principal.Email == "" {
		return nil, errors.ErrUnauthorized
	}

	areas, err := uc.areaRepo.ListByUploader(ctx, principal.Email)
	if err != nil {
		uc.logger.Error("Failed to list areas by uploader",
			zap.String("email", principal.Email), zap.Error(err))
		return nil, errors.ErrRemoteStoreError
	}

	result := make([]dto.AreaResponse, 0, len(areas))
	for _, area := range areas {
		result = append(result, dto.NewAreaResponse(area))
	}
	return result, nil
}

// Categories возвращает закрытый набор категорий со словарями тегов для
// формы ввода
func (uc *AreaQueryUseCase) Categories() []dto.CategoryResponse {
	cats := domain.Categories()
	result := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		result = append(result, dto.NewCategoryResponse(c))
	}
	return result
}

// listAreas читает список областей через кэш
func (uc *AreaQueryUseCase) listAreas(ctx context.Context) ([]*domain.Area, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.Get(ctx, areaListCacheKey)
		if err == nil && cached != nil {
			var areas []*domain.Area
			if err := json.Unmarshal(cached, &areas); err == nil {
				return areas, nil
			}
			// Битый кэш игнорируем и идём в хранилище
		}
	}

	areas, err := uc.areaRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list areas", zap.Error(err))
		return nil, errors.ErrRemoteStoreError
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(areas); err == nil {
			if err := uc.cacheRepo.Set(ctx, areaListCacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache area list", zap.Error(err))
			}
		}
	}

	return areas, nil
}
