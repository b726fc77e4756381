package serializers

import "schmebulock/server/internal/models"

// BrandWrite — входной формат записи бренда
type BrandWrite struct {
	Name *string `json:"name"`
}

// BrandSerializer преобразует бренды между моделью и проводным форматом
type BrandSerializer struct{}

// Validate проверяет входные данные; existing == nil означает создание
func (BrandSerializer) Validate(p *BrandWrite, existing *models.Brand) error {
	errs := NewValidationErrors()
	if existing == nil && (p.Name == nil || *p.Name == "") {
		errs.AddField("name", MsgRequired)
	}
	return errs.OrNil()
}

// Apply переносит проверенные данные в модель
func (BrandSerializer) Apply(p *BrandWrite, brand *models.Brand) error {
	if p.Name != nil {
		brand.Name = *p.Name
	}
	return nil
}

// ToWire строит проводное представление бренда
func (BrandSerializer) ToWire(brand *models.Brand, nested bool) (Wire, error) {
	ret := Wire{
		"id":   brand.ID,
		"name": brand.Name,
	}
	wireAudit(ret, brand.Audit)
	return ret, nil
}
