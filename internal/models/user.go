package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User представляет пользователя API
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"type:varchar(128);uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"type:varchar(255);not null"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName указывает имя таблицы в БД
func (User) TableName() string {
	return "users"
}

// AuthToken представляет выданный bearer-токен доступа
type AuthToken struct {
	Token     string    `json:"token" gorm:"type:uuid;primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"-" gorm:"foreignKey:UserID"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы в БД
func (AuthToken) TableName() string {
	return "auth_tokens"
}

// BeforeCreate hook для генерации токена, если не указан
func (t *AuthToken) BeforeCreate(tx *gorm.DB) error {
	if t.Token == "" {
		t.Token = uuid.New().String()
	}
	return nil
}
