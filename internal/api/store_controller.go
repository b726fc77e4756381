package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schmebulock/server/internal/models"
	"schmebulock/server/internal/serializers"
	"schmebulock/server/internal/services"
)

// StoreController управляет API endpoints для магазинов
type StoreController struct {
	service  *services.StoreService
	audit    *services.AuditPublisher
	pageSize int
}

// NewStoreController создает новый контроллер магазинов
func NewStoreController(service *services.StoreService, audit *services.AuditPublisher, pageSize int) *StoreController {
	return &StoreController{service: service, audit: audit, pageSize: pageSize}
}

// GetStores получает страницу магазинов
// GET /api/v1/stores?page=N
func (sc *StoreController) GetStores(c *gin.Context) {
	offset, limit, page := pageParams(c, sc.pageSize)
	nested := nestedRequested(c)

	stores, total, err := sc.service.GetAllStores(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]serializers.Wire, 0, len(stores))
	for i := range stores {
		wire, err := serializers.StoreSerializer{}.ToWire(&stores[i], nested)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results = append(results, wire)
	}

	c.JSON(http.StatusOK, listEnvelope(page, total, results))
}

// GetStore получает магазин по ID
// GET /api/v1/stores/:id
func (sc *StoreController) GetStore(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	store, err := sc.service.GetStoreByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	wire, err := serializers.StoreSerializer{}.ToWire(store, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// GetStoreMetadata отдает описание полей магазина
// GET /api/v1/stores/metadata
func (sc *StoreController) GetStoreMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, serializers.StoreMetadata())
}

// CreateStore создает новый магазин
// POST /api/v1/stores
func (sc *StoreController) CreateStore(c *gin.Context) {
	var payload serializers.StoreWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := (serializers.StoreSerializer{}).Validate(&payload, nil); err != nil {
		respondWriteError(c, err)
		return
	}

	var store models.Store
	if err := (serializers.StoreSerializer{}).Apply(&payload, &store); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&store.Audit, currentUserID(c), true)

	if err := sc.service.CreateStore(&store); err != nil {
		respondWriteError(c, err)
		return
	}

	sc.audit.Publish("store", store.ID, services.AuditActionCreate, currentUserID(c))

	wire, err := serializers.StoreSerializer{}.ToWire(&store, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, wire)
}

// UpdateStore частично обновляет магазин
// PATCH /api/v1/stores/:id
func (sc *StoreController) UpdateStore(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	store, err := sc.service.GetStoreByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	var payload serializers.StoreWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := (serializers.StoreSerializer{}).Validate(&payload, store); err != nil {
		respondWriteError(c, err)
		return
	}

	if err := (serializers.StoreSerializer{}).Apply(&payload, store); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&store.Audit, currentUserID(c), false)

	if err := sc.service.UpdateStore(store); err != nil {
		respondWriteError(c, err)
		return
	}

	sc.audit.Publish("store", store.ID, services.AuditActionUpdate, currentUserID(c))

	wire, err := serializers.StoreSerializer{}.ToWire(store, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// DeleteStore удаляет магазин
// DELETE /api/v1/stores/:id
func (sc *StoreController) DeleteStore(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := sc.service.DeleteStore(id); err != nil {
		respondLookupError(c, err)
		return
	}

	sc.audit.Publish("store", id, services.AuditActionDelete, currentUserID(c))

	c.JSON(http.StatusOK, gin.H{"message": "Магазин удален"})
}
