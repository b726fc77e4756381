package models

import "time"

// Order представляет визит в магазин за покупками в конкретную дату
type Order struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	Date    time.Time `json:"date" gorm:"type:date;not null;index"`
	StoreID uint      `json:"store" gorm:"not null;index"`
	Store   *Store    `json:"store_detail,omitempty" gorm:"foreignKey:StoreID"`
	Audit
}

// TableName указывает имя таблицы в БД
func (Order) TableName() string {
	return "orders"
}
