package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/whereizit-service/internal/domain"
)

func TestEffectEvent_MarshalJSON(t *testing.T) {
	t.Run("zero coordinates survive serialization", func(t *testing.T) {
		event := domain.EffectEvent{
			Kind:  domain.EffectMoveCamera,
			Lat:   0,
			Lng:   0,
			Eased: true,
		}

		data, err := json.Marshal(event)
		assert.NoError(t, err)

		var decoded map[string]interface{}
		assert.NoError(t, json.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, "lat")
		assert.Contains(t, decoded, "lng")
		assert.Equal(t, float64(0), decoded["lat"])
		assert.Equal(t, float64(0), decoded["lng"])
	})

	t.Run("panel reset omits the area payload", func(t *testing.T) {
		event := domain.EffectEvent{Kind: domain.EffectResetPanels}

		data, err := json.Marshal(event)
		assert.NoError(t, err)

		var decoded map[string]interface{}
		assert.NoError(t, json.Unmarshal(data, &decoded))
		assert.NotContains(t, decoded, "area")
		assert.Equal(t, string(domain.EffectResetPanels), decoded["kind"])
	})
}
