package services

import (
	"fmt"

	"gorm.io/gorm"

	"schmebulock/server/internal/models"
)

// OrderService управляет логикой заказов
type OrderService struct {
	db *gorm.DB
}

// NewOrderService создает новый экземпляр OrderService
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// GetAllOrders возвращает страницу заказов с магазинами и общее количество
func (s *OrderService) GetAllOrders(offset, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	if err := s.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета заказов: %w", err)
	}

	if err := s.db.Preload("Store").Order("id").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка получения заказов: %w", err)
	}

	return orders, total, nil
}

// GetOrderByID возвращает заказ по ID
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Store").First(&order, id).Error; err != nil {
		return nil, fmt.Errorf("заказ с ID %d не найден: %w", id, err)
	}
	return &order, nil
}

// CreateOrder создает новый заказ, проверяя существование магазина
func (s *OrderService) CreateOrder(order *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var store models.Store
		if err := tx.First(&store, order.StoreID).Error; err != nil {
			return fmt.Errorf("магазин с ID %d не найден: %w", order.StoreID, err)
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("ошибка создания заказа: %w", err)
		}
		return nil
	})
}

// UpdateOrder сохраняет изменения существующего заказа
func (s *OrderService) UpdateOrder(order *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var store models.Store
		if err := tx.First(&store, order.StoreID).Error; err != nil {
			return fmt.Errorf("магазин с ID %d не найден: %w", order.StoreID, err)
		}

		if err := tx.Save(order).Error; err != nil {
			return fmt.Errorf("ошибка обновления заказа: %w", err)
		}
		return nil
	})
}

// DeleteOrder удаляет заказ
func (s *OrderService) DeleteOrder(id uint) error {
	result := s.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return fmt.Errorf("ошибка удаления заказа: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("заказ с ID %d не найден: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
