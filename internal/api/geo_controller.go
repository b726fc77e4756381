package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schmebulock/server/internal/serializers"
	"schmebulock/server/internal/services"
)

// GeoController отдает географический справочник (только чтение)
type GeoController struct {
	service  *services.GeoService
	pageSize int
}

// NewGeoController создает новый контроллер справочника
func NewGeoController(service *services.GeoService, pageSize int) *GeoController {
	return &GeoController{service: service, pageSize: pageSize}
}

// GetDistricts получает страницу районов
// GET /api/v1/districts?page=N&nested=true
func (gc *GeoController) GetDistricts(c *gin.Context) {
	offset, limit, page := pageParams(c, gc.pageSize)
	nested := nestedRequested(c)

	districts, total, err := gc.service.GetAllDistricts(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]serializers.Wire, 0, len(districts))
	for i := range districts {
		wire, err := serializers.DistrictSerializer{}.ToWire(&districts[i], nested)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results = append(results, wire)
	}

	c.JSON(http.StatusOK, listEnvelope(page, total, results))
}

// GetDistrict получает район по ID
// GET /api/v1/districts/:id
func (gc *GeoController) GetDistrict(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	district, err := gc.service.GetDistrictByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	wire, err := serializers.DistrictSerializer{}.ToWire(district, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}
