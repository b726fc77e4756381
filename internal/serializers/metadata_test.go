package serializers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schmebulock/server/internal/utils"
)

func TestEnrichFieldInfoVolume(t *testing.T) {
	info := EnrichFieldInfo("volume", FieldInfo{Type: "float", Label: "Volume"})

	require.NotEmpty(t, info.UnitChoices)
	// Каноническая единица принудительно первая
	assert.Equal(t, utils.Choice{"cubic_meter", "cubic meter"}, info.UnitChoices[0])
	assert.Empty(t, info.Choices)
}

func TestEnrichFieldInfoWeight(t *testing.T) {
	info := EnrichFieldInfo("weight", FieldInfo{Type: "float", Label: "Weight"})

	require.NotEmpty(t, info.UnitChoices)
	assert.Equal(t, utils.Choice{"g", "gram"}, info.UnitChoices[0])
}

func TestEnrichFieldInfoCurrency(t *testing.T) {
	info := EnrichFieldInfo("currency", FieldInfo{Type: "string", Label: "Currency"})

	require.NotEmpty(t, info.Choices)
	// Без принудительного первого элемента: естественный порядок перечисления
	assert.Equal(t, utils.Choice{"AUD", "Australian Dollar"}, info.Choices[0])

	found := false
	for _, c := range info.Choices {
		if c[0] == "USD" {
			found = true
			assert.Equal(t, "US Dollar", c[1])
		}
	}
	assert.True(t, found)
}

func TestEnrichFieldInfoPassThrough(t *testing.T) {
	original := FieldInfo{Type: "string", Required: true, Label: "Name"}

	info := EnrichFieldInfo("name", original)

	assert.Equal(t, original, info)
	assert.Empty(t, info.UnitChoices)
	assert.Empty(t, info.Choices)
}

func TestItemMetadataFields(t *testing.T) {
	meta := ItemMetadata()

	assert.Contains(t, meta.Names, "volume")
	assert.Contains(t, meta.Names, "weight")
	assert.Contains(t, meta.Names, "unit")

	require.NotEmpty(t, meta.Fields["volume"].UnitChoices)
	assert.Equal(t, utils.Choice{"cubic_meter", "cubic meter"}, meta.Fields["volume"].UnitChoices[0])
	require.NotEmpty(t, meta.Fields["weight"].UnitChoices)
	assert.Equal(t, utils.Choice{"g", "gram"}, meta.Fields["weight"].UnitChoices[0])
	assert.Empty(t, meta.Fields["name"].UnitChoices)
}

func TestPurchaseMetadataFields(t *testing.T) {
	meta := PurchaseMetadata()

	require.NotEmpty(t, meta.Fields["currency"].Choices)
	assert.Empty(t, meta.Fields["price"].Choices)
	assert.True(t, meta.Fields["price"].Required)
}
