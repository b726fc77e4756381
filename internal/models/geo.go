package models

// Географический справочник район → город → страна.
// Данные только для чтения: наполняются внешней загрузкой, API их не меняет.

// Country представляет страну
type Country struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(128);not null;index"`
}

// TableName указывает имя таблицы в БД
func (Country) TableName() string {
	return "countries"
}

// City представляет город
type City struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	Name      string   `json:"name" gorm:"type:varchar(128);not null;index"`
	CountryID uint     `json:"country" gorm:"not null;index"`
	Country   *Country `json:"country_detail,omitempty" gorm:"foreignKey:CountryID"`
}

// TableName указывает имя таблицы в БД
func (City) TableName() string {
	return "cities"
}

// District представляет район города
type District struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"type:varchar(128);not null;index"`
	CityID uint   `json:"city" gorm:"not null;index"`
	City   *City  `json:"city_detail,omitempty" gorm:"foreignKey:CityID"`
}

// TableName указывает имя таблицы в БД
func (District) TableName() string {
	return "districts"
}
