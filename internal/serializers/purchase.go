package serializers

import (
	"github.com/shopspring/decimal"

	"schmebulock/server/internal/models"
	"schmebulock/server/internal/money"
)

// PurchaseWrite — входной формат записи покупки. Валюта опциональна и
// подставляется из конфигурации, если не указана.
type PurchaseWrite struct {
	Price    *decimal.Decimal `json:"price"`
	Currency *string          `json:"currency"`
	Item     *uint            `json:"item"`
	Order    *uint            `json:"order"`
	Location *uint            `json:"location"`
}

// PurchaseSerializer преобразует покупки между моделью и проводным форматом
type PurchaseSerializer struct {
	DefaultCurrency string
}

// NewPurchaseSerializer создает сериализатор покупок с валютой по умолчанию
func NewPurchaseSerializer(defaultCurrency string) PurchaseSerializer {
	if defaultCurrency == "" {
		defaultCurrency = money.DefaultCurrency
	}
	return PurchaseSerializer{DefaultCurrency: defaultCurrency}
}

// Validate проверяет входные данные; existing == nil означает создание.
// Цена обязательна на уровне сериализатора, хотя колонка хранения
// допускает NULL.
func (s PurchaseSerializer) Validate(p *PurchaseWrite, existing *models.Purchase) error {
	errs := NewValidationErrors()

	if existing == nil && p.Price == nil {
		errs.AddField("price", MsgRequired)
	}
	// Колонка хранит три знака после запятой; лишние знаки отклоняем,
	// а не округляем молча
	if p.Price != nil && p.Price.Exponent() < -3 {
		errs.AddField("price", MsgTooManyDecimals)
	}
	if existing == nil && p.Item == nil {
		errs.AddField("item", MsgRequired)
	}
	if existing == nil && p.Location == nil {
		errs.AddField("location", MsgRequired)
	}

	if p.Currency != nil && *p.Currency != "" {
		if err := money.ValidateCurrency(*p.Currency); err != nil {
			errs.AddField("currency", err.Error())
		}
	}

	return errs.OrNil()
}

// Apply переносит проверенные данные в модель
func (s PurchaseSerializer) Apply(p *PurchaseWrite, purchase *models.Purchase) error {
	if p.Price != nil {
		price := *p.Price
		purchase.Price = &price
	}
	if p.Currency != nil && *p.Currency != "" {
		purchase.PriceCurrency = *p.Currency
	} else if purchase.PriceCurrency == "" {
		purchase.PriceCurrency = s.DefaultCurrency
	}
	if p.Item != nil {
		purchase.ItemID = *p.Item
		purchase.Item = nil
	}
	if p.Order != nil {
		purchase.OrderID = p.Order
		purchase.Order = nil
	}
	if p.Location != nil {
		purchase.LocationID = *p.Location
		purchase.Location = nil
	}
	return nil
}

// ToWire строит проводное представление покупки. Цена форматируется с
// фиксированными тремя знаками, валюта всегда присутствует отдельным полем.
// Во вложенном виде item раскрывается до бренда, order — до магазина,
// location — до цепочки район → город → страна.
func (s PurchaseSerializer) ToWire(purchase *models.Purchase, nested bool) (Wire, error) {
	ret := Wire{
		"id":       purchase.ID,
		"currency": purchase.PriceCurrency,
	}

	// Цена не должна быть NULL после валидации, но читаем защитно
	if purchase.Price != nil {
		ret["price"] = money.New(*purchase.Price, purchase.PriceCurrency).WireAmount()
	} else {
		ret["price"] = nil
	}

	if nested {
		item, err := blindNestedItem(purchase.Item)
		if err != nil {
			return nil, err
		}
		ret["item"] = item
		ret["order"] = blindNestedOrder(purchase.Order)
		ret["location"] = blindNestedLocation(purchase.Location)
	} else {
		ret["item"] = purchase.ItemID
		ret["order"] = purchase.OrderID
		ret["location"] = purchase.LocationID
	}

	wireAudit(ret, purchase.Audit)
	return ret, nil
}
