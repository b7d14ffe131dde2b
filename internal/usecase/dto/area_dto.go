package dto

import (
	"time"

	"github.com/whereizit-service/internal/domain"
)

// SubmitAreaRequest - черновик области из формы ввода. Указатели отличают
// "не заполнено" от пустого значения; контракт сохранения проверяется в
// usecase.
type SubmitAreaRequest struct {
	DocumentID       string   `json:"document_id,omitempty"`
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Lat              *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng              *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
	Category         *string  `json:"category"`
	UploadedImageURL *string  `json:"uploaded_image_url,omitempty"`
	PreviousImageURL *string  `json:"previous_image_url,omitempty"`
	EnvironmentTags  []string `json:"environment_tags,omitempty"`
	TypeTags         []string `json:"type_tags,omitempty"`
	FacilityTags     []string `json:"facility_tags,omitempty"`
}

// SubmitAreaResponse возвращает ID записанного документа
type SubmitAreaResponse struct {
	DocumentID string `json:"document_id"`
}

// UploadPhotoResponse возвращает постоянный URL загруженной фотографии
type UploadPhotoResponse struct {
	ImageURL string `json:"image_url"`
}

// AreaResponse - область в ответах API
type AreaResponse struct {
	DocumentID      string    `json:"document_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
	Category        string    `json:"category"`
	CategoryBadge   Badge     `json:"category_badge"`
	ImageURL        string    `json:"image_url,omitempty"`
	EnvironmentTags []string  `json:"environment_tags,omitempty"`
	TypeTags        []string  `json:"type_tags,omitempty"`
	FacilityTags    []string  `json:"facility_tags,omitempty"`
	UploadUser      string    `json:"upload_user"`
	UploadDate      time.Time `json:"upload_date"`
}

// Badge - данные бейджа категории для слоя отображения
type Badge struct {
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	TextColor   string `json:"text_color"`
}

// CategoryResponse - категория для формы ввода: бейдж, иконка маркера и
// словарь тегов по осям
type CategoryResponse struct {
	Category   string              `json:"category"`
	Badge      Badge               `json:"badge"`
	MarkerIcon string              `json:"marker_icon"`
	TagAxes    []string            `json:"tag_axes"`
	Tags       map[string][]string `json:"tags"`
}

// NewCategoryResponse собирает CategoryResponse из варианта категории
func NewCategoryResponse(c domain.Category) CategoryResponse {
	vocab := domain.TagVocabulary(c)
	tags := make(map[string][]string, len(vocab))
	for axis, values := range vocab {
		tags[string(axis)] = values
	}

	domainAxes := domain.TagAxes()
	axes := make([]string, 0, len(domainAxes))
	for _, axis := range domainAxes {
		axes = append(axes, string(axis))
	}

	return CategoryResponse{
		Category: c.String(),
		Badge: Badge{
			DisplayName: c.DisplayName(),
			Icon:        c.BadgeIcon(),
			Color:       c.BadgeColor(),
			TextColor:   c.TextColor(),
		},
		MarkerIcon: c.MarkerIcon(),
		TagAxes:    axes,
		Tags:       tags,
	}
}

// NearbyAreaResponse - область списка "рядом" с дистанцией до пользователя
type NearbyAreaResponse struct {
	AreaResponse
	DistanceMeters float64 `json:"distance_meters"`
	Distance       string  `json:"distance"`
}

// MarkerResponse - маркер из зеркала карты
type MarkerResponse struct {
	ID       string  `json:"id"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Icon     string  `json:"icon"`
	Category string  `json:"category"`
}

// NewAreaResponse собирает AreaResponse из доменной области
func NewAreaResponse(area *domain.Area) AreaResponse {
	return AreaResponse{
		DocumentID:  area.DocumentID,
		Name:        area.Name,
		Description: area.Description,
		Lat:         area.AreaLat,
		Lng:         area.AreaLng,
		Category:    area.Category.String(),
		CategoryBadge: Badge{
			DisplayName: area.Category.DisplayName(),
			Icon:        area.Category.BadgeIcon(),
			Color:       area.Category.BadgeColor(),
			TextColor:   area.Category.TextColor(),
		},
		ImageURL:        area.ImageURL,
		EnvironmentTags: area.EnvironmentTags,
		TypeTags:        area.TypeTags,
		FacilityTags:    area.FacilityTags,
		UploadUser:      area.UploadUser,
		UploadDate:      area.UploadDate,
	}
}
