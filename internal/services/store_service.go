package services

import (
	"fmt"

	"gorm.io/gorm"

	"schmebulock/server/internal/models"
)

// StoreService управляет логикой магазинов
type StoreService struct {
	db *gorm.DB
}

// NewStoreService создает новый экземпляр StoreService
func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

// GetAllStores возвращает страницу магазинов и общее количество
func (s *StoreService) GetAllStores(offset, limit int) ([]models.Store, int64, error) {
	var stores []models.Store
	var total int64

	if err := s.db.Model(&models.Store{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета магазинов: %w", err)
	}

	if err := s.db.Order("id").Offset(offset).Limit(limit).Find(&stores).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка получения магазинов: %w", err)
	}

	return stores, total, nil
}

// GetStoreByID возвращает магазин по ID
func (s *StoreService) GetStoreByID(id uint) (*models.Store, error) {
	var store models.Store
	if err := s.db.First(&store, id).Error; err != nil {
		return nil, fmt.Errorf("магазин с ID %d не найден: %w", id, err)
	}
	return &store, nil
}

// CreateStore создает новый магазин
func (s *StoreService) CreateStore(store *models.Store) error {
	if err := s.db.Create(store).Error; err != nil {
		return fmt.Errorf("ошибка создания магазина: %w", err)
	}
	return nil
}

// UpdateStore сохраняет изменения существующего магазина
func (s *StoreService) UpdateStore(store *models.Store) error {
	if err := s.db.Save(store).Error; err != nil {
		return fmt.Errorf("ошибка обновления магазина: %w", err)
	}
	return nil
}

// DeleteStore удаляет магазин
func (s *StoreService) DeleteStore(id uint) error {
	result := s.db.Delete(&models.Store{}, id)
	if result.Error != nil {
		return fmt.Errorf("ошибка удаления магазина: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("магазин с ID %d не найден: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
