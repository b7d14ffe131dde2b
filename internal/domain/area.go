package domain

import (
	"fmt"
	"time"
)

// Имена коллекций в удалённом хранилище документов
const (
	AreasCollection   = "smokingAreas"
	ReportsCollection = "reports"
)

// DescriptionPlaceholder - текст-подсказка поля описания. Описание, равное
// подсказке, считается незаполненным.
const DescriptionPlaceholder = "우측으로 5m"

// Area - добавленная пользователем точка интереса (курилка, туалет, урна,
// питьевая вода)
type Area struct {
	DocumentID      string    `json:"document_id,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	AreaLat         float64   `json:"area_lat"`
	AreaLng         float64   `json:"area_lng"`
	Category        Category  `json:"category"`
	EnvironmentTags []string  `json:"environment_tags,omitempty"`
	TypeTags        []string  `json:"type_tags,omitempty"`
	FacilityTags    []string  `json:"facility_tags,omitempty"`
	UploadUser      string    `json:"upload_user"`
	UploadDate      time.Time `json:"upload_date"`
}

// DeriveDocumentID строит детерминированный ID документа из координат новой
// области. Две области с численно одинаковыми координатами получают один и
// тот же ID и перезаписывают друг друга - известное ограничение модели.
func DeriveDocumentID(lat, lng float64) string {
	return fmt.Sprintf("%.9f_%.9f", lat, lng)
}

// ParseArea разбирает сырой набор полей документа в Area. Разбор частичный:
// если одно из четырёх обязательных полей (name, description, areaLat,
// areaLng) отсутствует или имеет неверный тип - возвращается ошибка и запись
// пропускается. Все остальные поля получают значения по умолчанию.
func ParseArea(documentID string, fields map[string]interface{}) (*Area, error) {
	name, ok := fields["name"].(string)
	if !ok {
		return nil, fmt.Errorf("document %s: missing or invalid field %q", documentID, "name")
	}
	description, ok := fields["description"].(string)
	if !ok {
		return nil, fmt.Errorf("document %s: missing or invalid field %q", documentID, "description")
	}
	areaLat, ok := asFloat(fields["areaLat"])
	if !ok {
		return nil, fmt.Errorf("document %s: missing or invalid field %q", documentID, "areaLat")
	}
	areaLng, ok := asFloat(fields["areaLng"])
	if !ok {
		return nil, fmt.Errorf("document %s: missing or invalid field %q", documentID, "areaLng")
	}

	imageURL, _ := fields["imageURL"].(string)
	categoryRaw, _ := fields["category"].(string)

	uploadDate, ok := fields["uploadDate"].(time.Time)
	if !ok {
		uploadDate = time.Now()
	}
	uploadUser, _ := fields["uploadUser"].(string)

	return &Area{
		DocumentID:      documentID,
		ImageURL:        imageURL,
		Name:            name,
		Description:     description,
		AreaLat:         areaLat,
		AreaLng:         areaLng,
		Category:        ParseCategory(categoryRaw),
		EnvironmentTags: asStrings(fields["environmentTags"]),
		TypeTags:        asStrings(fields["typeTags"]),
		FacilityTags:    asStrings(fields["facilityTags"]),
		UploadUser:      uploadUser,
		UploadDate:      uploadDate,
	}, nil
}

// Fields возвращает представление области для upsert в удалённое хранилище.
// Имена полей совпадают со схемой коллекции smokingAreas.
func (a *Area) Fields() map[string]interface{} {
	return map[string]interface{}{
		"documentID":      a.DocumentID,
		"imageURL":        a.ImageURL,
		"name":            a.Name,
		"description":     a.Description,
		"areaLat":         a.AreaLat,
		"areaLng":         a.AreaLng,
		"category":        a.Category.String(),
		"environmentTags": a.EnvironmentTags,
		"typeTags":        a.TypeTags,
		"facilityTags":    a.FacilityTags,
		"uploadUser":      a.UploadUser,
		"uploadDate":      a.UploadDate,
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		// Firestore хранит целые координаты как int64
		return float64(n), true
	default:
		return 0, false
	}
}

func asStrings(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
