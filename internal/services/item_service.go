package services

import (
	"fmt"

	"gorm.io/gorm"

	"schmebulock/server/internal/models"
)

// ItemService управляет логикой товаров
type ItemService struct {
	db *gorm.DB
}

// NewItemService создает новый экземпляр ItemService
func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// GetAllItems возвращает страницу товаров с брендами и общее количество
func (s *ItemService) GetAllItems(offset, limit int) ([]models.Item, int64, error) {
	var items []models.Item
	var total int64

	if err := s.db.Model(&models.Item{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета товаров: %w", err)
	}

	if err := s.db.Preload("Brand").Order("id").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка получения товаров: %w", err)
	}

	return items, total, nil
}

// GetItemByID возвращает товар по ID
func (s *ItemService) GetItemByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := s.db.Preload("Brand").First(&item, id).Error; err != nil {
		return nil, fmt.Errorf("товар с ID %d не найден: %w", id, err)
	}
	return &item, nil
}

// CreateItem создает новый товар, проверяя существование бренда
func (s *ItemService) CreateItem(item *models.Item) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var brand models.Brand
		if err := tx.First(&brand, item.BrandID).Error; err != nil {
			return fmt.Errorf("бренд с ID %d не найден: %w", item.BrandID, err)
		}

		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("ошибка создания товара: %w", err)
		}
		return nil
	})
}

// UpdateItem сохраняет изменения существующего товара
func (s *ItemService) UpdateItem(item *models.Item) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var brand models.Brand
		if err := tx.First(&brand, item.BrandID).Error; err != nil {
			return fmt.Errorf("бренд с ID %d не найден: %w", item.BrandID, err)
		}

		if err := tx.Save(item).Error; err != nil {
			return fmt.Errorf("ошибка обновления товара: %w", err)
		}
		return nil
	})
}

// DeleteItem удаляет товар
func (s *ItemService) DeleteItem(id uint) error {
	result := s.db.Delete(&models.Item{}, id)
	if result.Error != nil {
		return fmt.Errorf("ошибка удаления товара: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("товар с ID %d не найден: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
