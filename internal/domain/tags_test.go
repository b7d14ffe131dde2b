package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/whereizit-service/internal/domain"
)

func TestTagVocabulary(t *testing.T) {
	t.Run("every category covers all axes", func(t *testing.T) {
		for _, c := range domain.Categories() {
			vocab := domain.TagVocabulary(c)
			for _, axis := range domain.TagAxes() {
				assert.NotEmpty(t, vocab[axis], "category %s axis %s", c.DisplayName(), axis)
			}
		}
	})

	t.Run("unknown category has no tags", func(t *testing.T) {
		assert.Empty(t, domain.TagVocabulary(domain.CategoryUnknown))
		assert.Nil(t, domain.AllowedTags(domain.CategoryUnknown, domain.TagAxisType))
	})

	t.Run("smoking area type axis", func(t *testing.T) {
		tags := domain.AllowedTags(domain.CategorySmokingArea, domain.TagAxisType)
		assert.Contains(t, tags, "흡연 구역")
		assert.Contains(t, tags, "피시방")
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		tags := domain.AllowedTags(domain.CategoryWater, domain.TagAxisFacility)
		tags[0] = "mutated"
		assert.NotContains(t,
			domain.AllowedTags(domain.CategoryWater, domain.TagAxisFacility),
			"mutated")
	})
}

func TestFilterTags(t *testing.T) {
	t.Run("keeps vocabulary tags in submitted order", func(t *testing.T) {
		result := domain.FilterTags(domain.CategorySmokingArea, domain.TagAxisEnvironment,
			[]string{"개방형", "실내"})
		assert.Equal(t, []string{"개방형", "실내"}, result)
	})

	t.Run("drops tags outside the vocabulary", func(t *testing.T) {
		result := domain.FilterTags(domain.CategorySmokingArea, domain.TagAxisEnvironment,
			[]string{"실내", "무료 와이파이"})
		assert.Equal(t, []string{"실내"}, result)
	})

	t.Run("unknown category drops everything", func(t *testing.T) {
		assert.Nil(t, domain.FilterTags(domain.CategoryUnknown, domain.TagAxisType,
			[]string{"건물"}))
	})

	t.Run("no tags submitted", func(t *testing.T) {
		assert.Nil(t, domain.FilterTags(domain.CategoryRestroom, domain.TagAxisType, nil))
	})
}
