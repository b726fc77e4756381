package serializers

import (
	"time"

	"schmebulock/server/internal/models"
)

// Wire — JSON-представление записи на проводе
type Wire = map[string]interface{}

// DateFormat — формат дат заказа на проводе
const DateFormat = "2006-01-02"

// wireAudit добавляет поля аудита в представление
func wireAudit(ret Wire, a models.Audit) {
	ret["created_by"] = a.CreatedByID
	ret["modified_by"] = a.ModifiedByID
	ret["created"] = a.CreatedAt.UTC().Format(time.RFC3339)
	ret["modified"] = a.UpdatedAt.UTC().Format(time.RFC3339)
}

// blindBrand — вложенное представление бренда: только id и name
func blindBrand(b *models.Brand) Wire {
	if b == nil {
		return nil
	}
	return Wire{"id": b.ID, "name": b.Name}
}

// blindStore — вложенное представление магазина: только id и name
func blindStore(s *models.Store) Wire {
	if s == nil {
		return nil
	}
	return Wire{"id": s.ID, "name": s.Name}
}

// nestedDistrict — вложенное представление цепочки район → город → страна
func nestedDistrict(d *models.District) Wire {
	if d == nil {
		return nil
	}
	ret := Wire{"id": d.ID, "name": d.Name}
	if d.City != nil {
		city := Wire{"id": d.City.ID, "name": d.City.Name}
		if d.City.Country != nil {
			city["country"] = Wire{"id": d.City.Country.ID, "name": d.City.Country.Name}
		} else {
			city["country"] = nil
		}
		ret["city"] = city
	} else {
		ret["city"] = nil
	}
	return ret
}
