package serializers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schmebulock/server/internal/models"
)

func strPtr(s string) *string    { return &s }
func uintPtr(u uint) *uint       { return &u }
func floatPtr(f float64) *float64 { return &f }

func validItemWrite() *ItemWrite {
	return &ItemWrite{
		Name:   strPtr("Milk"),
		Brand:  uintPtr(1),
		Unit:   strPtr("l"),
		Volume: floatPtr(2),
	}
}

func requireValidationErrors(t *testing.T, err error) *ValidationErrors {
	t.Helper()
	require.Error(t, err)
	var errs *ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs
}

func TestItemValidateOK(t *testing.T) {
	err := ItemSerializer{}.Validate(validItemWrite(), nil)
	require.NoError(t, err)
}

func TestItemValidateMissingRequiredFields(t *testing.T) {
	err := ItemSerializer{}.Validate(&ItemWrite{Volume: floatPtr(1)}, nil)
	errs := requireValidationErrors(t, err)

	assert.Equal(t, []string{MsgRequired}, errs.Fields["name"])
	assert.Equal(t, []string{MsgRequired}, errs.Fields["brand"])
	assert.Empty(t, errs.NonField)
}

func TestItemValidateNeitherMeasurement(t *testing.T) {
	p := &ItemWrite{Name: strPtr("Milk"), Brand: uintPtr(1)}

	err := ItemSerializer{}.Validate(p, nil)
	errs := requireValidationErrors(t, err)

	// По одной ошибке на каждое поле, каждая ссылается на альтернативу
	assert.Equal(t, []string{MsgVolumeRequired}, errs.Fields["volume"])
	assert.Equal(t, []string{MsgWeightRequired}, errs.Fields["weight"])
	assert.Empty(t, errs.NonField)
}

func TestItemValidateBothMeasurements(t *testing.T) {
	p := validItemWrite()
	p.Weight = floatPtr(3)

	err := ItemSerializer{}.Validate(p, nil)
	errs := requireValidationErrors(t, err)

	// Единственная общая ошибка, без ошибок на самих полях
	assert.Equal(t, []string{MsgMutuallyExclusive}, errs.NonField)
	assert.Empty(t, errs.Fields["volume"])
	assert.Empty(t, errs.Fields["weight"])
}

func TestItemValidateInvalidVolumeUnit(t *testing.T) {
	p := validItemWrite()
	p.Unit = strPtr("g")

	err := ItemSerializer{}.Validate(p, nil)
	errs := requireValidationErrors(t, err)

	require.Len(t, errs.Fields["unit"], 1)
	assert.Equal(t, "'g' is an invalid unit for volume field.", errs.Fields["unit"][0])
}

func TestItemValidateInvalidWeightUnit(t *testing.T) {
	p := &ItemWrite{
		Name:   strPtr("Flour"),
		Brand:  uintPtr(1),
		Unit:   strPtr("l"),
		Weight: floatPtr(500),
	}

	err := ItemSerializer{}.Validate(p, nil)
	errs := requireValidationErrors(t, err)

	assert.Equal(t, []string{"'l' is an invalid unit for weight field."}, errs.Fields["unit"])
}

func TestItemValidateUnitOnlyUpdate(t *testing.T) {
	volume := 1.0
	existing := &models.Item{Name: "Milk", BrandID: 1, Volume: &volume, Unit: "cubic_meter"}

	// Единица проверяется по виду величины сохраненной записи
	err := ItemSerializer{}.Validate(&ItemWrite{Unit: strPtr("l")}, existing)
	require.NoError(t, err)

	err = ItemSerializer{}.Validate(&ItemWrite{Unit: strPtr("kg")}, existing)
	errs := requireValidationErrors(t, err)
	assert.Equal(t, []string{"'kg' is an invalid unit for volume field."}, errs.Fields["unit"])
}

func TestItemApplyCreateConvertsToCanonical(t *testing.T) {
	var item models.Item
	err := ItemSerializer{}.Apply(validItemWrite(), &item)
	require.NoError(t, err)

	// 2 литра = 0.002 кубометра канонически
	require.NotNil(t, item.Volume)
	assert.InDelta(t, 0.002, *item.Volume, 1e-12)
	assert.Nil(t, item.Weight)
	assert.Equal(t, "l", item.Unit)
	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, uint(1), item.BrandID)
}

func TestItemApplyCreateWeightDefaultUnit(t *testing.T) {
	var item models.Item
	p := &ItemWrite{Name: strPtr("Flour"), Brand: uintPtr(2), Weight: floatPtr(500)}

	err := ItemSerializer{}.Apply(p, &item)
	require.NoError(t, err)

	require.NotNil(t, item.Weight)
	assert.Equal(t, 500.0, *item.Weight)
	assert.Nil(t, item.Volume)
	assert.Equal(t, "g", item.Unit)
}

func TestItemApplySwitchesKind(t *testing.T) {
	volume := 0.002
	item := models.Item{Name: "Milk", BrandID: 1, Volume: &volume, Unit: "l"}

	err := ItemSerializer{}.Apply(&ItemWrite{Weight: floatPtr(2), Unit: strPtr("kg")}, &item)
	require.NoError(t, err)

	// Ровно одно из полей заполнено после любого успешного обновления
	assert.Nil(t, item.Volume)
	require.NotNil(t, item.Weight)
	assert.InDelta(t, 2000.0, *item.Weight, 1e-9)
	assert.Equal(t, "kg", item.Unit)
}

func TestItemApplyUnitOnlyUpdateLossless(t *testing.T) {
	canonical := 1000.0 // кубометров
	item := models.Item{Name: "Tank", BrandID: 1, Volume: &canonical, Unit: "cubic_meter"}

	err := ItemSerializer{}.Apply(&ItemWrite{Unit: strPtr("l")}, &item)
	require.NoError(t, err)

	// Каноническое значение не изменилось, сменилась только единица отображения
	require.NotNil(t, item.Volume)
	assert.InEpsilon(t, 1000.0, *item.Volume, 1e-9)
	assert.Equal(t, "l", item.Unit)

	// Отображаемое значение — 1 000 000 литров
	wire, err := ItemSerializer{}.ToWire(&item, false)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e6, wire["volume"].(float64), 1e-9)
	assert.Equal(t, "l", wire["unit"])

	// Повторное применение той же единицы идемпотентно
	err = ItemSerializer{}.Apply(&ItemWrite{Unit: strPtr("l")}, &item)
	require.NoError(t, err)
	assert.InEpsilon(t, 1000.0, *item.Volume, 1e-9)
}

func TestItemApplyMagnitudeKeepsStoredUnit(t *testing.T) {
	canonical := 0.002
	item := models.Item{Name: "Milk", BrandID: 1, Volume: &canonical, Unit: "l"}

	// Новое значение без единицы конвертируется в сохраненной единице
	err := ItemSerializer{}.Apply(&ItemWrite{Volume: floatPtr(5)}, &item)
	require.NoError(t, err)

	require.NotNil(t, item.Volume)
	assert.InDelta(t, 0.005, *item.Volume, 1e-12)
	assert.Equal(t, "l", item.Unit)
}

func TestItemToWireFlat(t *testing.T) {
	canonical := 0.002
	item := models.Item{
		ID:      7,
		Name:    "Milk",
		BrandID: 3,
		Brand:   &models.Brand{ID: 3, Name: "DairyCo"},
		Volume:  &canonical,
		Unit:    "l",
	}

	wire, err := ItemSerializer{}.ToWire(&item, false)
	require.NoError(t, err)

	assert.Equal(t, uint(7), wire["id"])
	assert.Equal(t, "Milk", wire["name"])
	assert.Equal(t, uint(3), wire["brand"])
	assert.InDelta(t, 2.0, wire["volume"].(float64), 1e-9)
	assert.Nil(t, wire["weight"])
	assert.Equal(t, "l", wire["unit"])
}

func TestItemToWireNested(t *testing.T) {
	weight := 500.0
	item := models.Item{
		ID:      8,
		Name:    "Flour",
		BrandID: 4,
		Brand:   &models.Brand{ID: 4, Name: "MillCo"},
		Weight:  &weight,
		Unit:    "g",
	}

	wire, err := ItemSerializer{}.ToWire(&item, true)
	require.NoError(t, err)

	brand, ok := wire["brand"].(Wire)
	require.True(t, ok)
	assert.Equal(t, uint(4), brand["id"])
	assert.Equal(t, "MillCo", brand["name"])
	assert.Nil(t, wire["volume"])
	assert.Equal(t, 500.0, wire["weight"])
	assert.Equal(t, "g", wire["unit"])
}

func TestItemToWireDefensiveBothEmpty(t *testing.T) {
	// Оба измерения пусты: после валидации невозможно, но читаем защитно
	item := models.Item{ID: 9, Name: "Ghost", BrandID: 1}

	wire, err := ItemSerializer{}.ToWire(&item, false)
	require.NoError(t, err)

	assert.Nil(t, wire["volume"])
	assert.Nil(t, wire["weight"])
	assert.Nil(t, wire["unit"])
}
