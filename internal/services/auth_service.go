package services

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schmebulock/server/internal/models"
)

// AuthService управляет пользователями и bearer-токенами
type AuthService struct {
	db       *gorm.DB
	tokenTTL time.Duration
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(db *gorm.DB, tokenTTL time.Duration) *AuthService {
	return &AuthService{db: db, tokenTTL: tokenTTL}
}

// RegisterUser создает пользователя с хэшированным паролем
func (s *AuthService) RegisterUser(username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("ошибка хэширования пароля: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	return &user, nil
}

// Login проверяет учетные данные и выдает новый токен
func (s *AuthService) Login(username, password string) (*models.AuthToken, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("неверное имя пользователя или пароль")
	}

	if !user.IsActive {
		return nil, fmt.Errorf("пользователь деактивирован")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("неверное имя пользователя или пароль")
	}

	token := models.AuthToken{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.tokenTTL),
	}
	if err := s.db.Create(&token).Error; err != nil {
		return nil, fmt.Errorf("ошибка создания токена: %w", err)
	}
	token.User = &user

	now := time.Now()
	if err := s.db.Model(&user).Update("last_login_at", &now).Error; err != nil {
		return nil, fmt.Errorf("ошибка обновления времени входа: %w", err)
	}

	return &token, nil
}

// Authenticate проверяет токен и возвращает его владельца
func (s *AuthService) Authenticate(tokenValue string) (*models.User, error) {
	var token models.AuthToken
	if err := s.db.Preload("User").First(&token, "token = ?", tokenValue).Error; err != nil {
		return nil, fmt.Errorf("токен не найден: %w", err)
	}

	if time.Now().After(token.ExpiresAt) {
		return nil, fmt.Errorf("срок действия токена истек")
	}

	if token.User == nil || !token.User.IsActive {
		return nil, fmt.Errorf("пользователь деактивирован")
	}

	return token.User, nil
}

// Logout отзывает токен
func (s *AuthService) Logout(tokenValue string) error {
	if err := s.db.Delete(&models.AuthToken{}, "token = ?", tokenValue).Error; err != nil {
		return fmt.Errorf("ошибка отзыва токена: %w", err)
	}
	return nil
}

// CleanupExpiredTokens удаляет токены с истекшим сроком
func (s *AuthService) CleanupExpiredTokens() (int64, error) {
	result := s.db.Delete(&models.AuthToken{}, "expires_at < ?", time.Now())
	if result.Error != nil {
		return 0, fmt.Errorf("ошибка очистки токенов: %w", result.Error)
	}
	return result.RowsAffected, nil
}
