package serializers

import "schmebulock/server/internal/models"

// DistrictSerializer строит проводное представление районов.
// Справочник географии доступен только для чтения, поэтому
// валидации и применения записи здесь нет.
type DistrictSerializer struct{}

// ToWire строит представление района. Во вложенном виде цепочка
// раскрывается до города и страны, в плоском — только идентификатор города.
func (DistrictSerializer) ToWire(d *models.District, nested bool) (Wire, error) {
	if nested {
		return nestedDistrict(d), nil
	}
	return Wire{
		"id":   d.ID,
		"name": d.Name,
		"city": d.CityID,
	}, nil
}
