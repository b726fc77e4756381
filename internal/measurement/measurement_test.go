package measurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCanonicalDefaultUnit(t *testing.T) {
	got, err := ToCanonical(2.5, "", KindVolume)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	got, err = ToCanonical(42, "", KindWeight)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
}

func TestToCanonicalLiters(t *testing.T) {
	got, err := ToCanonical(1000, "l", KindVolume)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestToCanonicalKilograms(t *testing.T) {
	got, err := ToCanonical(2, "kg", KindWeight)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, got, 1e-9)
}

func TestToCanonicalInvalidUnit(t *testing.T) {
	_, err := ToCanonical(1, "furlong", KindVolume)
	require.Error(t, err)
	assert.Equal(t, "'furlong' is an invalid unit for volume field.", err.Error())

	var invalid *InvalidUnitError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, KindVolume, invalid.Kind)
}

func TestFromCanonicalLiters(t *testing.T) {
	// 1000 кубометров = 1 000 000 литров
	got, err := FromCanonical(1000, "l", KindVolume)
	require.NoError(t, err)
	assert.InDelta(t, 1e6, got, 1e-6)
}

func TestFromCanonicalInvalidUnit(t *testing.T) {
	_, err := FromCanonical(1, "parsec", KindWeight)
	require.Error(t, err)
	assert.Equal(t, "'parsec' is an invalid unit for weight field.", err.Error())
}

// Закон двустороннего преобразования: from(to(x)) == x для всех единиц
func TestRoundTripAllUnits(t *testing.T) {
	for _, kind := range []Kind{KindVolume, KindWeight} {
		for unit := range factors(kind) {
			canonical, err := ToCanonical(123.456, unit, kind)
			require.NoError(t, err)

			back, err := FromCanonical(canonical, unit, kind)
			require.NoError(t, err)
			assert.InEpsilon(t, 123.456, back, 1e-9, "unit %s (%s)", unit, kind)
		}
	}
}

func TestCanonicalUnit(t *testing.T) {
	assert.Equal(t, "cubic_meter", CanonicalUnit(KindVolume))
	assert.Equal(t, "g", CanonicalUnit(KindWeight))
}

func TestAliasesCoverFactors(t *testing.T) {
	for _, kind := range []Kind{KindVolume, KindWeight} {
		aliases := Aliases(kind)
		assert.Len(t, aliases, len(factors(kind)))
		for _, alias := range aliases {
			assert.True(t, IsValidUnit(alias.Value, kind), "alias %q -> %q", alias.Key, alias.Value)
		}
	}
}
