package serializers

import (
	"time"

	"schmebulock/server/internal/models"
)

// OrderWrite — входной формат записи заказа
type OrderWrite struct {
	Date  *string `json:"date"`
	Store *uint   `json:"store"`
}

// OrderSerializer преобразует заказы между моделью и проводным форматом
type OrderSerializer struct{}

// Validate проверяет входные данные; existing == nil означает создание
func (OrderSerializer) Validate(p *OrderWrite, existing *models.Order) error {
	errs := NewValidationErrors()
	if existing == nil && p.Date == nil {
		errs.AddField("date", MsgRequired)
	}
	if p.Date != nil {
		if _, err := time.Parse(DateFormat, *p.Date); err != nil {
			errs.AddField("date", MsgInvalidDate)
		}
	}
	if existing == nil && p.Store == nil {
		errs.AddField("store", MsgRequired)
	}
	return errs.OrNil()
}

// Apply переносит проверенные данные в модель
func (OrderSerializer) Apply(p *OrderWrite, order *models.Order) error {
	if p.Date != nil {
		date, err := time.Parse(DateFormat, *p.Date)
		if err != nil {
			errs := NewValidationErrors()
			errs.AddField("date", MsgInvalidDate)
			return errs
		}
		order.Date = date
	}
	if p.Store != nil {
		order.StoreID = *p.Store
		order.Store = nil
	}
	return nil
}

// ToWire строит проводное представление заказа.
// В плоском виде store — идентификатор, во вложенном — объект {id, name}.
func (OrderSerializer) ToWire(order *models.Order, nested bool) (Wire, error) {
	ret := Wire{
		"id":   order.ID,
		"date": order.Date.Format(DateFormat),
	}
	if nested {
		ret["store"] = blindStore(order.Store)
	} else {
		ret["store"] = order.StoreID
	}
	wireAudit(ret, order.Audit)
	return ret, nil
}

// blindNestedOrder — вложенное представление заказа без полей аудита
func blindNestedOrder(order *models.Order) Wire {
	if order == nil {
		return nil
	}
	return Wire{
		"id":    order.ID,
		"date":  order.Date.Format(DateFormat),
		"store": blindStore(order.Store),
	}
}
