package models

// Store представляет магазин (IKEA, PriceSmart и т.п.)
type Store struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(128);not null"`
	Audit
}

// TableName указывает имя таблицы в БД
func (Store) TableName() string {
	return "stores"
}
