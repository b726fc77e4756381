package serializers

import "schmebulock/server/internal/models"

// LocationWrite — входной формат записи локации
type LocationWrite struct {
	Address  *string `json:"address"`
	District *uint   `json:"district"`
}

// LocationSerializer преобразует локации между моделью и проводным форматом
type LocationSerializer struct{}

// Validate проверяет входные данные; existing == nil означает создание
func (LocationSerializer) Validate(p *LocationWrite, existing *models.Location) error {
	errs := NewValidationErrors()
	if existing == nil && (p.Address == nil || *p.Address == "") {
		errs.AddField("address", MsgRequired)
	}
	if existing == nil && p.District == nil {
		errs.AddField("district", MsgRequired)
	}
	return errs.OrNil()
}

// Apply переносит проверенные данные в модель
func (LocationSerializer) Apply(p *LocationWrite, location *models.Location) error {
	if p.Address != nil {
		location.Address = *p.Address
	}
	if p.District != nil {
		location.DistrictID = *p.District
		location.District = nil
	}
	return nil
}

// ToWire строит проводное представление локации. Во вложенном виде район
// раскрывается рекурсивно до города и страны.
func (LocationSerializer) ToWire(location *models.Location, nested bool) (Wire, error) {
	ret := Wire{
		"id":      location.ID,
		"address": location.Address,
	}
	if nested {
		ret["district"] = nestedDistrict(location.District)
	} else {
		ret["district"] = location.DistrictID
	}
	wireAudit(ret, location.Audit)
	return ret, nil
}

// blindNestedLocation — вложенное представление локации без полей аудита
func blindNestedLocation(location *models.Location) Wire {
	if location == nil {
		return nil
	}
	return Wire{
		"id":       location.ID,
		"address":  location.Address,
		"district": nestedDistrict(location.District),
	}
}
