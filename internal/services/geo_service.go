package services

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"schmebulock/server/internal/models"
	"schmebulock/server/internal/utils"
)

const (
	geoDistrictsCacheKey = "geo:districts"
	geoCacheTTL          = 5 * time.Minute
)

// GeoService отдает географический справочник (страна → город → район).
// Справочник наполняется миграциями и меняется редко, поэтому
// список районов кэшируется в Redis целиком.
type GeoService struct {
	db        *gorm.DB
	redisUtil *utils.RedisClient
}

// NewGeoService создает новый экземпляр GeoService
// redisUtil может быть nil, тогда кэширование отключено
func NewGeoService(db *gorm.DB, redisUtil *utils.RedisClient) *GeoService {
	return &GeoService{db: db, redisUtil: redisUtil}
}

// GetAllDistricts возвращает страницу районов с полной цепочкой и общее количество
func (s *GeoService) GetAllDistricts(offset, limit int) ([]models.District, int64, error) {
	districts, err := s.loadDistricts()
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(districts))
	if offset >= len(districts) {
		return []models.District{}, total, nil
	}

	end := offset + limit
	if end > len(districts) {
		end = len(districts)
	}

	return districts[offset:end], total, nil
}

// GetDistrictByID возвращает район по ID
func (s *GeoService) GetDistrictByID(id uint) (*models.District, error) {
	var district models.District
	if err := s.db.Preload("City.Country").First(&district, id).Error; err != nil {
		return nil, fmt.Errorf("район с ID %d не найден: %w", id, err)
	}
	return &district, nil
}

// loadDistricts загружает полный список районов, используя Redis при наличии
func (s *GeoService) loadDistricts() ([]models.District, error) {
	if s.redisUtil != nil {
		var cached []models.District
		if err := s.redisUtil.GetJSON(geoDistrictsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	var districts []models.District
	if err := s.db.Preload("City.Country").Order("id").Find(&districts).Error; err != nil {
		return nil, fmt.Errorf("ошибка получения районов: %w", err)
	}

	if s.redisUtil != nil {
		if err := s.redisUtil.Set(geoDistrictsCacheKey, districts, geoCacheTTL); err != nil {
			log.Printf("⚠️ Не удалось закэшировать районы: %v", err)
		}
	}

	return districts, nil
}

// InvalidateCache сбрасывает кэш справочника
func (s *GeoService) InvalidateCache() {
	if s.redisUtil == nil {
		return
	}
	if err := s.redisUtil.Delete(geoDistrictsCacheKey); err != nil {
		log.Printf("⚠️ Не удалось сбросить кэш районов: %v", err)
	}
}
