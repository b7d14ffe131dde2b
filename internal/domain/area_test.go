package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/whereizit-service/internal/domain"
)

func TestDeriveDocumentID(t *testing.T) {
	tests := []struct {
		name     string
		lat      float64
		lng      float64
		expected string
	}{
		{
			name:     "nine decimal places",
			lat:      37.123456789,
			lng:      127.123456789,
			expected: "37.123456789_127.123456789",
		},
		{
			name:     "short fractions are padded",
			lat:      37.5,
			lng:      127.0,
			expected: "37.500000000_127.000000000",
		},
		{
			name:     "negative coordinates",
			lat:      -33.86,
			lng:      -151.2,
			expected: "-33.860000000_-151.200000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.DeriveDocumentID(tt.lat, tt.lng))
		})
	}

	t.Run("identical coordinates collide", func(t *testing.T) {
		assert.Equal(t,
			domain.DeriveDocumentID(37.5, 127.0),
			domain.DeriveDocumentID(37.5, 127.0))
	})
}

func TestParseArea(t *testing.T) {
	uploadDate := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	validFields := func() map[string]interface{} {
		return map[string]interface{}{
			"name":        "역삼역 흡연부스",
			"description": "2번 출구 앞",
			"areaLat":     37.5,
			"areaLng":     127.03,
			"category":    "흡연구역",
			"imageURL":    "https://example.com/a.jpg",
			"uploadUser":  "user@example.com",
			"uploadDate":  uploadDate,
			"environmentTags": []interface{}{"실외", "개방형"},
		}
	}

	t.Run("full document", func(t *testing.T) {
		area, err := domain.ParseArea("37.500000000_127.030000000", validFields())

		assert.NoError(t, err)
		assert.Equal(t, "37.500000000_127.030000000", area.DocumentID)
		assert.Equal(t, "역삼역 흡연부스", area.Name)
		assert.Equal(t, "2번 출구 앞", area.Description)
		assert.Equal(t, 37.5, area.AreaLat)
		assert.Equal(t, 127.03, area.AreaLng)
		assert.Equal(t, domain.CategorySmokingArea, area.Category)
		assert.Equal(t, "https://example.com/a.jpg", area.ImageURL)
		assert.Equal(t, "user@example.com", area.UploadUser)
		assert.Equal(t, uploadDate, area.UploadDate)
		assert.Equal(t, []string{"실외", "개방형"}, area.EnvironmentTags)
	})

	t.Run("required field missing", func(t *testing.T) {
		required := []string{"name", "description", "areaLat", "areaLng"}
		for _, field := range required {
			fields := validFields()
			delete(fields, field)

			area, err := domain.ParseArea("doc-1", fields)

			assert.Error(t, err, "field %q", field)
			assert.Nil(t, area)
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("required field has wrong type", func(t *testing.T) {
		fields := validFields()
		fields["areaLat"] = "37.5"

		area, err := domain.ParseArea("doc-1", fields)

		assert.Error(t, err)
		assert.Nil(t, area)
	})

	t.Run("integer coordinates are accepted", func(t *testing.T) {
		fields := validFields()
		fields["areaLat"] = int64(37)
		fields["areaLng"] = int64(127)

		area, err := domain.ParseArea("doc-1", fields)

		assert.NoError(t, err)
		assert.Equal(t, 37.0, area.AreaLat)
		assert.Equal(t, 127.0, area.AreaLng)
	})

	t.Run("optional fields get defaults", func(t *testing.T) {
		fields := map[string]interface{}{
			"name":        "이름",
			"description": "설명",
			"areaLat":     37.5,
			"areaLng":     127.0,
		}

		area, err := domain.ParseArea("doc-1", fields)

		assert.NoError(t, err)
		assert.Equal(t, domain.CategoryUnknown, area.Category)
		assert.Empty(t, area.ImageURL)
		assert.Empty(t, area.UploadUser)
		assert.Nil(t, area.EnvironmentTags)
		assert.Nil(t, area.TypeTags)
		assert.Nil(t, area.FacilityTags)
		assert.WithinDuration(t, time.Now(), area.UploadDate, time.Minute)
	})

	t.Run("non-string tags are dropped", func(t *testing.T) {
		fields := validFields()
		fields["typeTags"] = []interface{}{"건물", 42, "카페"}

		area, err := domain.ParseArea("doc-1", fields)

		assert.NoError(t, err)
		assert.Equal(t, []string{"건물", "카페"}, area.TypeTags)
	})
}

func TestArea_Fields(t *testing.T) {
	uploadDate := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	area := &domain.Area{
		DocumentID:      "37.500000000_127.030000000",
		Name:            "역삼역 흡연부스",
		Description:     "2번 출구 앞",
		AreaLat:         37.5,
		AreaLng:         127.03,
		Category:        domain.CategoryWater,
		UploadUser:      "user@example.com",
		UploadDate:      uploadDate,
		FacilityTags:    []string{"온수"},
	}

	fields := area.Fields()

	assert.Equal(t, "37.500000000_127.030000000", fields["documentID"])
	assert.Equal(t, "물", fields["category"])
	assert.Equal(t, 37.5, fields["areaLat"])
	assert.Equal(t, uploadDate, fields["uploadDate"])

	t.Run("round trip preserves the area", func(t *testing.T) {
		parsed, err := domain.ParseArea(area.DocumentID, toRawFields(fields))
		assert.NoError(t, err)
		assert.Equal(t, area.Name, parsed.Name)
		assert.Equal(t, area.Category, parsed.Category)
		assert.Equal(t, area.FacilityTags, parsed.FacilityTags)
	})
}

// toRawFields имитирует представление, в котором документ приходит из
// подписки: срезы приходят как []interface{}
func toRawFields(fields map[string]interface{}) map[string]interface{} {
	raw := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if tags, ok := v.([]string); ok {
			items := make([]interface{}, len(tags))
			for i, tag := range tags {
				items[i] = tag
			}
			raw[k] = items
			continue
		}
		raw[k] = v
	}
	return raw
}
