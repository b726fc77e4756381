package models

// Brand представляет торговую марку (IKEA, Pampers и т.п.)
type Brand struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(128);not null"`
	Audit
}

// TableName указывает имя таблицы в БД
func (Brand) TableName() string {
	return "brands"
}
