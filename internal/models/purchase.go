package models

import "github.com/shopspring/decimal"

// Purchase представляет покупку товара: цена с валютой, товар, локация
// и опциональная привязка к заказу. Колонка Price допускает NULL на уровне
// хранения, обязательность цены обеспечивает сериализатор.
type Purchase struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	Price         *decimal.Decimal `json:"price" gorm:"type:decimal(15,3)"`
	PriceCurrency string           `json:"currency" gorm:"type:varchar(3);not null;default:'USD'"`
	ItemID        uint             `json:"item" gorm:"not null;index"`
	Item          *Item            `json:"item_detail,omitempty" gorm:"foreignKey:ItemID"`
	OrderID       *uint            `json:"order" gorm:"index"`
	Order         *Order           `json:"order_detail,omitempty" gorm:"foreignKey:OrderID"`
	LocationID    uint             `json:"location" gorm:"not null;index"`
	Location      *Location        `json:"location_detail,omitempty" gorm:"foreignKey:LocationID"`
	Audit
}

// TableName указывает имя таблицы в БД
func (Purchase) TableName() string {
	return "purchases"
}
