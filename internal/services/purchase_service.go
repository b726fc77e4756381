package services

import (
	"fmt"

	"gorm.io/gorm"

	"schmebulock/server/internal/models"
)

// Цепочки связей, которые нужны сериализатору для вложенного вида
var purchasePreloads = []string{
	"Item.Brand",
	"Order.Store",
	"Location.District.City.Country",
}

// PurchaseService управляет логикой покупок
type PurchaseService struct {
	db *gorm.DB
}

// NewPurchaseService создает новый экземпляр PurchaseService
func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

func (s *PurchaseService) withPreloads(tx *gorm.DB) *gorm.DB {
	for _, p := range purchasePreloads {
		tx = tx.Preload(p)
	}
	return tx
}

// GetAllPurchases возвращает страницу покупок со всеми связями и общее количество
func (s *PurchaseService) GetAllPurchases(offset, limit int) ([]models.Purchase, int64, error) {
	var purchases []models.Purchase
	var total int64

	if err := s.db.Model(&models.Purchase{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета покупок: %w", err)
	}

	if err := s.withPreloads(s.db).Order("id").Offset(offset).Limit(limit).Find(&purchases).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка получения покупок: %w", err)
	}

	return purchases, total, nil
}

// GetPurchaseByID возвращает покупку по ID
func (s *PurchaseService) GetPurchaseByID(id uint) (*models.Purchase, error) {
	var purchase models.Purchase
	if err := s.withPreloads(s.db).First(&purchase, id).Error; err != nil {
		return nil, fmt.Errorf("покупка с ID %d не найдена: %w", id, err)
	}
	return &purchase, nil
}

// checkReferences проверяет существование всех связанных записей
func (s *PurchaseService) checkReferences(tx *gorm.DB, purchase *models.Purchase) error {
	var item models.Item
	if err := tx.First(&item, purchase.ItemID).Error; err != nil {
		return fmt.Errorf("товар с ID %d не найден: %w", purchase.ItemID, err)
	}

	if purchase.OrderID != nil {
		var order models.Order
		if err := tx.First(&order, *purchase.OrderID).Error; err != nil {
			return fmt.Errorf("заказ с ID %d не найден: %w", *purchase.OrderID, err)
		}
	}

	var location models.Location
	if err := tx.First(&location, purchase.LocationID).Error; err != nil {
		return fmt.Errorf("точка покупки с ID %d не найдена: %w", purchase.LocationID, err)
	}

	return nil
}

// CreatePurchase создает новую покупку, проверяя все ссылки
func (s *PurchaseService) CreatePurchase(purchase *models.Purchase) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkReferences(tx, purchase); err != nil {
			return err
		}

		if err := tx.Create(purchase).Error; err != nil {
			return fmt.Errorf("ошибка создания покупки: %w", err)
		}
		return nil
	})
}

// UpdatePurchase сохраняет изменения существующей покупки
func (s *PurchaseService) UpdatePurchase(purchase *models.Purchase) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkReferences(tx, purchase); err != nil {
			return err
		}

		if err := tx.Save(purchase).Error; err != nil {
			return fmt.Errorf("ошибка обновления покупки: %w", err)
		}
		return nil
	})
}

// DeletePurchase удаляет покупку
func (s *PurchaseService) DeletePurchase(id uint) error {
	result := s.db.Delete(&models.Purchase{}, id)
	if result.Error != nil {
		return fmt.Errorf("ошибка удаления покупки: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("покупка с ID %d не найдена: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
