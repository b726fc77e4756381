package serializers

import "schmebulock/server/internal/models"

// StoreWrite — входной формат записи магазина
type StoreWrite struct {
	Name *string `json:"name"`
}

// StoreSerializer преобразует магазины между моделью и проводным форматом
type StoreSerializer struct{}

// Validate проверяет входные данные; existing == nil означает создание
func (StoreSerializer) Validate(p *StoreWrite, existing *models.Store) error {
	errs := NewValidationErrors()
	if existing == nil && (p.Name == nil || *p.Name == "") {
		errs.AddField("name", MsgRequired)
	}
	return errs.OrNil()
}

// Apply переносит проверенные данные в модель
func (StoreSerializer) Apply(p *StoreWrite, store *models.Store) error {
	if p.Name != nil {
		store.Name = *p.Name
	}
	return nil
}

// ToWire строит проводное представление магазина
func (StoreSerializer) ToWire(store *models.Store, nested bool) (Wire, error) {
	ret := Wire{
		"id":   store.ID,
		"name": store.Name,
	}
	wireAudit(ret, store.Audit)
	return ret, nil
}
