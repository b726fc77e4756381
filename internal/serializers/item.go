package serializers

import (
	"fmt"

	"schmebulock/server/internal/measurement"
	"schmebulock/server/internal/models"
)

// ItemWrite — входной формат записи товара. Указывается ровно одно из
// полей volume/weight; unit относится к тому из них, которое передано.
type ItemWrite struct {
	Name   *string  `json:"name"`
	Brand  *uint    `json:"brand"`
	Unit   *string  `json:"unit"`
	Volume *float64 `json:"volume"`
	Weight *float64 `json:"weight"`
}

// ItemSerializer преобразует товары между моделью и проводным форматом,
// выполняя каноническую конвертацию единиц измерения
type ItemSerializer struct{}

// Validate проверяет входные данные; existing == nil означает создание.
// Порядок проверок: обязательные поля, затем перекрестные проверки
// volume/weight, затем корректность единицы. Все ошибки собираются вместе.
func (ItemSerializer) Validate(p *ItemWrite, existing *models.Item) error {
	errs := NewValidationErrors()

	if existing == nil {
		if p.Name == nil || *p.Name == "" {
			errs.AddField("name", MsgRequired)
		}
		if p.Brand == nil {
			errs.AddField("brand", MsgRequired)
		}
	}

	bothProvided := p.Volume != nil && p.Weight != nil
	if existing == nil && p.Volume == nil && p.Weight == nil {
		errs.AddField("volume", MsgVolumeRequired)
		errs.AddField("weight", MsgWeightRequired)
	}
	if bothProvided {
		errs.AddNonField(MsgMutuallyExclusive)
	}

	// Единицу можно проверить только когда вид величины однозначен
	if p.Unit != nil && *p.Unit != "" && !bothProvided {
		if kind, ok := measurementKind(p, existing); ok {
			if !measurement.IsValidUnit(*p.Unit, kind) {
				errs.AddField("unit", fmt.Sprintf(
					"'%s' is an invalid unit for %s field.", *p.Unit, kind))
			}
		}
	}

	return errs.OrNil()
}

// measurementKind определяет вид величины по входным данным, а при
// обновлении без нового значения — по сохраненной записи
func measurementKind(p *ItemWrite, existing *models.Item) (measurement.Kind, bool) {
	switch {
	case p.Volume != nil:
		return measurement.KindVolume, true
	case p.Weight != nil:
		return measurement.KindWeight, true
	case existing != nil && existing.Volume != nil:
		return measurement.KindVolume, true
	case existing != nil && existing.Weight != nil:
		return measurement.KindWeight, true
	}
	return "", false
}

// Apply переносит проверенные данные в модель. Новое значение величины
// конвертируется в каноническую единицу; смена одной лишь единицы
// пересчитывает значение отображения из канонического без потерь.
func (ItemSerializer) Apply(p *ItemWrite, item *models.Item) error {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Brand != nil {
		item.BrandID = *p.Brand
		item.Brand = nil
	}

	unit := ""
	if p.Unit != nil {
		unit = *p.Unit
	}

	switch {
	case p.Volume != nil:
		if unit == "" {
			if item.Weight == nil && item.Volume != nil {
				unit = item.Unit
			}
			if unit == "" {
				unit = measurement.CanonicalVolumeUnit
			}
		}
		canonical, err := measurement.ToCanonical(*p.Volume, unit, measurement.KindVolume)
		if err != nil {
			return unitError(err)
		}
		item.Volume = &canonical
		item.Weight = nil
		item.Unit = unit

	case p.Weight != nil:
		if unit == "" {
			if item.Volume == nil && item.Weight != nil {
				unit = item.Unit
			}
			if unit == "" {
				unit = measurement.CanonicalWeightUnit
			}
		}
		canonical, err := measurement.ToCanonical(*p.Weight, unit, measurement.KindWeight)
		if err != nil {
			return unitError(err)
		}
		item.Weight = &canonical
		item.Volume = nil
		item.Unit = unit

	case unit != "" && item.Volume != nil:
		// Смена единицы без нового значения: пересчитываем отображаемое
		// значение из канонического и сохраняем канонически заново
		display, err := measurement.FromCanonical(*item.Volume, unit, measurement.KindVolume)
		if err != nil {
			return unitError(err)
		}
		canonical, err := measurement.ToCanonical(display, unit, measurement.KindVolume)
		if err != nil {
			return unitError(err)
		}
		item.Volume = &canonical
		item.Unit = unit

	case unit != "" && item.Weight != nil:
		display, err := measurement.FromCanonical(*item.Weight, unit, measurement.KindWeight)
		if err != nil {
			return unitError(err)
		}
		canonical, err := measurement.ToCanonical(display, unit, measurement.KindWeight)
		if err != nil {
			return unitError(err)
		}
		item.Weight = &canonical
		item.Unit = unit
	}

	return nil
}

// unitError приводит ошибку конвертации к ошибке валидации поля unit
func unitError(err error) error {
	errs := NewValidationErrors()
	errs.AddField("unit", err.Error())
	return errs
}

// ToWire строит проводное представление товара в два прохода: сперва
// обычные поля, затем поля измерений, вычисляемые доменной логикой.
// Ровно одно из volume/weight числовое, второе — null; unit синтезируется
// из заполненного измерения (null, только если оба пусты).
func (ItemSerializer) ToWire(item *models.Item, nested bool) (Wire, error) {
	ret := Wire{
		"id":   item.ID,
		"name": item.Name,
	}
	if nested {
		ret["brand"] = blindBrand(item.Brand)
	} else {
		ret["brand"] = item.BrandID
	}
	wireAudit(ret, item.Audit)

	volume, weight, unit, err := measurementFields(item)
	if err != nil {
		return nil, err
	}
	ret["volume"] = volume
	ret["weight"] = weight
	ret["unit"] = unit

	return ret, nil
}

// measurementFields вычисляет отображаемые значения измерений записи
func measurementFields(item *models.Item) (volume, weight, unit interface{}, err error) {
	switch {
	case item.Volume != nil:
		u := item.Unit
		if u == "" {
			u = measurement.CanonicalVolumeUnit
		}
		display, convErr := measurement.FromCanonical(*item.Volume, u, measurement.KindVolume)
		if convErr != nil {
			return nil, nil, nil, convErr
		}
		return display, nil, u, nil

	case item.Weight != nil:
		u := item.Unit
		if u == "" {
			u = measurement.CanonicalWeightUnit
		}
		display, convErr := measurement.FromCanonical(*item.Weight, u, measurement.KindWeight)
		if convErr != nil {
			return nil, nil, nil, convErr
		}
		return nil, display, u, nil
	}

	// После валидации сюда попадать не должны, но обрабатываем защитно
	return nil, nil, nil, nil
}

// blindNestedItem — вложенное представление товара без полей аудита
func blindNestedItem(item *models.Item) (Wire, error) {
	if item == nil {
		return nil, nil
	}
	volume, weight, unit, err := measurementFields(item)
	if err != nil {
		return nil, err
	}
	return Wire{
		"id":     item.ID,
		"name":   item.Name,
		"unit":   unit,
		"volume": volume,
		"weight": weight,
		"brand":  blindBrand(item.Brand),
	}, nil
}
