package models

// Location представляет адрес покупки с привязкой к району
type Location struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Address    string    `json:"address" gorm:"type:varchar(256);not null"`
	DistrictID uint      `json:"district" gorm:"not null;index"`
	District   *District `json:"district_detail,omitempty" gorm:"foreignKey:DistrictID"`
	Audit
}

// TableName указывает имя таблицы в БД
func (Location) TableName() string {
	return "locations"
}
