package models

// Item представляет товар. Ровно одно из полей Volume/Weight заполнено:
// объем хранится канонически в кубометрах, вес — в граммах. Unit хранит
// единицу отображения, в которой значение было введено или запрошено.
type Item struct {
	ID      uint     `json:"id" gorm:"primaryKey"`
	Name    string   `json:"name" gorm:"type:varchar(128);not null"`
	BrandID uint     `json:"brand" gorm:"not null;index"`
	Brand   *Brand   `json:"brand_detail,omitempty" gorm:"foreignKey:BrandID"`
	Volume  *float64 `json:"volume" gorm:"type:decimal(24,12)"`
	Weight  *float64 `json:"weight" gorm:"type:decimal(24,12)"`
	Unit    string   `json:"unit" gorm:"type:varchar(32)"`
	Audit
}

// TableName указывает имя таблицы в БД
func (Item) TableName() string {
	return "items"
}
