package models

import "time"

// Audit — общие поля аудита для всех сущностей: отметки времени создания и
// изменения плюс идентификаторы создавшего и изменившего пользователя.
// Сами пользователи принадлежат внешнему коллаборатору аудита.
type Audit struct {
	CreatedByID  *uint     `json:"created_by" gorm:"index"`
	ModifiedByID *uint     `json:"modified_by" gorm:"index"`
	CreatedAt    time.Time `json:"created" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"modified" gorm:"autoUpdateTime"`
}
