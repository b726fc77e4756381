package measurement

import (
	"fmt"

	"schmebulock/server/internal/utils"
)

// Kind определяет вид физической величины
type Kind string

const (
	KindVolume Kind = "volume"
	KindWeight Kind = "weight"
)

// Канонические единицы хранения: объем — кубометры, вес — граммы
const (
	CanonicalVolumeUnit = "cubic_meter"
	CanonicalWeightUnit = "g"
)

// InvalidUnitError — единица измерения вне допустимого набора для данного вида
type InvalidUnitError struct {
	Unit string
	Kind Kind
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("'%s' is an invalid unit for %s field.", e.Unit, e.Kind)
}

// volumeFactors — коэффициенты перевода единиц объема в кубометры
var volumeFactors = map[string]float64{
	"cubic_meter":      1.0,
	"cubic_decimeter":  0.001,
	"cubic_centimeter": 1e-6,
	"cubic_millimeter": 1e-9,
	"l":                0.001,
	"ml":               1e-6,
	"cubic_foot":       0.028316846592,
	"cubic_inch":       1.6387064e-5,
	"us_g":             0.003785411784,
	"us_qt":            0.000946352946,
	"us_pint":          0.000473176473,
	"us_cup":           0.0002365882365,
	"us_oz":            2.95735295625e-5,
	"imperial_g":       0.00454609,
	"imperial_pint":    0.00056826125,
	"imperial_oz":      2.84130625e-5,
}

// weightFactors — коэффициенты перевода единиц веса в граммы
var weightFactors = map[string]float64{
	"g":         1.0,
	"mg":        0.001,
	"kg":        1000.0,
	"tonne":     1e6,
	"oz":        28.349523125,
	"lb":        453.59237,
	"stone":     6350.29318,
	"short_ton": 907184.74,
	"long_ton":  1016046.9088,
}

// volumeAliases — читаемые названия единиц объема (порядок фиксирован)
var volumeAliases = []utils.Pair{
	{Key: "cubic centimeter", Value: "cubic_centimeter"},
	{Key: "cubic decimeter", Value: "cubic_decimeter"},
	{Key: "cubic foot", Value: "cubic_foot"},
	{Key: "cubic inch", Value: "cubic_inch"},
	{Key: "cubic meter", Value: "cubic_meter"},
	{Key: "cubic millimeter", Value: "cubic_millimeter"},
	{Key: "imperial gallon", Value: "imperial_g"},
	{Key: "imperial ounce", Value: "imperial_oz"},
	{Key: "imperial pint", Value: "imperial_pint"},
	{Key: "liter", Value: "l"},
	{Key: "milliliter", Value: "ml"},
	{Key: "US cup", Value: "us_cup"},
	{Key: "US fluid ounce", Value: "us_oz"},
	{Key: "US gallon", Value: "us_g"},
	{Key: "US pint", Value: "us_pint"},
	{Key: "US quart", Value: "us_qt"},
}

// weightAliases — читаемые названия единиц веса (порядок фиксирован)
var weightAliases = []utils.Pair{
	{Key: "gram", Value: "g"},
	{Key: "kilogram", Value: "kg"},
	{Key: "long ton", Value: "long_ton"},
	{Key: "milligram", Value: "mg"},
	{Key: "ounce", Value: "oz"},
	{Key: "pound", Value: "lb"},
	{Key: "short ton", Value: "short_ton"},
	{Key: "stone", Value: "stone"},
	{Key: "tonne", Value: "tonne"},
}

// CanonicalUnit возвращает каноническую единицу для вида величины
func CanonicalUnit(kind Kind) string {
	if kind == KindWeight {
		return CanonicalWeightUnit
	}
	return CanonicalVolumeUnit
}

// Aliases возвращает упорядоченный список (название, символ) единиц вида
func Aliases(kind Kind) []utils.Pair {
	if kind == KindWeight {
		return weightAliases
	}
	return volumeAliases
}

func factors(kind Kind) map[string]float64 {
	if kind == KindWeight {
		return weightFactors
	}
	return volumeFactors
}

// IsValidUnit проверяет, что символ единицы входит в набор для вида величины
func IsValidUnit(unit string, kind Kind) bool {
	_, ok := factors(kind)[unit]
	return ok
}

// ToCanonical переводит величину из указанной единицы в каноническую.
// Пустая единица трактуется как каноническая для данного вида.
func ToCanonical(magnitude float64, unit string, kind Kind) (float64, error) {
	if unit == "" {
		unit = CanonicalUnit(kind)
	}
	factor, ok := factors(kind)[unit]
	if !ok {
		return 0, &InvalidUnitError{Unit: unit, Kind: kind}
	}
	return magnitude * factor, nil
}

// FromCanonical переводит канонически хранимую величину в запрошенную единицу.
// Используется при чтении и при смене единицы отображения без нового значения.
func FromCanonical(stored float64, unit string, kind Kind) (float64, error) {
	if unit == "" {
		unit = CanonicalUnit(kind)
	}
	factor, ok := factors(kind)[unit]
	if !ok {
		return 0, &InvalidUnitError{Unit: unit, Kind: kind}
	}
	return stored / factor, nil
}
