package services

import (
	"fmt"

	"gorm.io/gorm"

	"schmebulock/server/internal/models"
)

// LocationService управляет логикой точек покупки
type LocationService struct {
	db *gorm.DB
}

// NewLocationService создает новый экземпляр LocationService
func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{db: db}
}

// GetAllLocations возвращает страницу точек с географической цепочкой и общее количество
func (s *LocationService) GetAllLocations(offset, limit int) ([]models.Location, int64, error) {
	var locations []models.Location
	var total int64

	if err := s.db.Model(&models.Location{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета точек покупки: %w", err)
	}

	if err := s.db.Preload("District.City.Country").Order("id").Offset(offset).Limit(limit).Find(&locations).Error; err != nil {
		return nil, 0, fmt.Errorf("ошибка получения точек покупки: %w", err)
	}

	return locations, total, nil
}

// GetLocationByID возвращает точку покупки по ID
func (s *LocationService) GetLocationByID(id uint) (*models.Location, error) {
	var location models.Location
	if err := s.db.Preload("District.City.Country").First(&location, id).Error; err != nil {
		return nil, fmt.Errorf("точка покупки с ID %d не найдена: %w", id, err)
	}
	return &location, nil
}

// CreateLocation создает новую точку, проверяя существование района
func (s *LocationService) CreateLocation(location *models.Location) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var district models.District
		if err := tx.First(&district, location.DistrictID).Error; err != nil {
			return fmt.Errorf("район с ID %d не найден: %w", location.DistrictID, err)
		}

		if err := tx.Create(location).Error; err != nil {
			return fmt.Errorf("ошибка создания точки покупки: %w", err)
		}
		return nil
	})
}

// UpdateLocation сохраняет изменения существующей точки
func (s *LocationService) UpdateLocation(location *models.Location) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var district models.District
		if err := tx.First(&district, location.DistrictID).Error; err != nil {
			return fmt.Errorf("район с ID %d не найден: %w", location.DistrictID, err)
		}

		if err := tx.Save(location).Error; err != nil {
			return fmt.Errorf("ошибка обновления точки покупки: %w", err)
		}
		return nil
	})
}

// DeleteLocation удаляет точку покупки
func (s *LocationService) DeleteLocation(id uint) error {
	result := s.db.Delete(&models.Location{}, id)
	if result.Error != nil {
		return fmt.Errorf("ошибка удаления точки покупки: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("точка покупки с ID %d не найдена: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
