package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schmebulock/server/internal/models"
	"schmebulock/server/internal/serializers"
	"schmebulock/server/internal/services"
)

// LocationController управляет API endpoints для точек покупки
type LocationController struct {
	service  *services.LocationService
	audit    *services.AuditPublisher
	pageSize int
}

// NewLocationController создает новый контроллер точек покупки
func NewLocationController(service *services.LocationService, audit *services.AuditPublisher, pageSize int) *LocationController {
	return &LocationController{service: service, audit: audit, pageSize: pageSize}
}

// GetLocations получает страницу точек покупки
// GET /api/v1/locations?page=N&nested=true
func (lc *LocationController) GetLocations(c *gin.Context) {
	offset, limit, page := pageParams(c, lc.pageSize)
	nested := nestedRequested(c)

	locations, total, err := lc.service.GetAllLocations(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]serializers.Wire, 0, len(locations))
	for i := range locations {
		wire, err := serializers.LocationSerializer{}.ToWire(&locations[i], nested)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results = append(results, wire)
	}

	c.JSON(http.StatusOK, listEnvelope(page, total, results))
}

// GetLocation получает точку покупки по ID
// GET /api/v1/locations/:id
func (lc *LocationController) GetLocation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	location, err := lc.service.GetLocationByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	wire, err := serializers.LocationSerializer{}.ToWire(location, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// GetLocationMetadata отдает описание полей точки покупки
// GET /api/v1/locations/metadata
func (lc *LocationController) GetLocationMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, serializers.LocationMetadata())
}

// CreateLocation создает новую точку покупки
// POST /api/v1/locations
func (lc *LocationController) CreateLocation(c *gin.Context) {
	var payload serializers.LocationWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := (serializers.LocationSerializer{}).Validate(&payload, nil); err != nil {
		respondWriteError(c, err)
		return
	}

	var location models.Location
	if err := (serializers.LocationSerializer{}).Apply(&payload, &location); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&location.Audit, currentUserID(c), true)

	if err := lc.service.CreateLocation(&location); err != nil {
		respondWriteError(c, err)
		return
	}

	lc.audit.Publish("location", location.ID, services.AuditActionCreate, currentUserID(c))

	// Перечитываем запись с географической цепочкой
	created, err := lc.service.GetLocationByID(location.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wire, err := serializers.LocationSerializer{}.ToWire(created, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, wire)
}

// UpdateLocation частично обновляет точку покупки
// PATCH /api/v1/locations/:id
func (lc *LocationController) UpdateLocation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	location, err := lc.service.GetLocationByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	var payload serializers.LocationWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := (serializers.LocationSerializer{}).Validate(&payload, location); err != nil {
		respondWriteError(c, err)
		return
	}

	if err := (serializers.LocationSerializer{}).Apply(&payload, location); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&location.Audit, currentUserID(c), false)

	if err := lc.service.UpdateLocation(location); err != nil {
		respondWriteError(c, err)
		return
	}

	lc.audit.Publish("location", location.ID, services.AuditActionUpdate, currentUserID(c))

	updated, err := lc.service.GetLocationByID(location.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wire, err := serializers.LocationSerializer{}.ToWire(updated, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// DeleteLocation удаляет точку покупки
// DELETE /api/v1/locations/:id
func (lc *LocationController) DeleteLocation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := lc.service.DeleteLocation(id); err != nil {
		respondLookupError(c, err)
		return
	}

	lc.audit.Publish("location", id, services.AuditActionDelete, currentUserID(c))

	c.JSON(http.StatusOK, gin.H{"message": "Точка покупки удалена"})
}
