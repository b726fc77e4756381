package services

import (
	"fmt"

	"gorm.io/gorm"

	"schmebulock/server/internal/models"
)

// BrandService управляет логикой брендов
type BrandService struct {
	db *gorm.DB
}

// NewBrandService создает новый экземпляр BrandService
func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

// GetAllBrands возвращает страницу брендов и общее количество
func (s *BrandService) GetAllBrands(offset, limit int) ([]models.Brand, int64, error) {
	var brands []models.Brand
	var total int64

	if err := s.db.Model(&models.Brand{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета брендов: %w", err)
	}

	if err := s.db.Order("id").Offset(offset).Limit(limit).Find(&brands).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка получения брендов: %w", err)
	}

	return brands, total, nil
}

// GetBrandByID возвращает бренд по ID
func (s *BrandService) GetBrandByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		return nil, fmt.Errorf("бренд с ID %d не найден: %w", id, err)
	}
	return &brand, nil
}

// CreateBrand создает новый бренд
func (s *BrandService) CreateBrand(brand *models.Brand) error {
	if err := s.db.Create(brand).Error; err != nil {
		return fmt.Errorf("ошибка создания бренда: %w", err)
	}
	return nil
}

// UpdateBrand сохраняет изменения существующего бренда
func (s *BrandService) UpdateBrand(brand *models.Brand) error {
	if err := s.db.Save(brand).Error; err != nil {
		return fmt.Errorf("ошибка обновления бренда: %w", err)
	}
	return nil
}

// DeleteBrand удаляет бренд
func (s *BrandService) DeleteBrand(id uint) error {
	result := s.db.Delete(&models.Brand{}, id)
	if result.Error != nil {
		return fmt.Errorf("ошибка удаления бренда: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("бренд с ID %d не найден: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
