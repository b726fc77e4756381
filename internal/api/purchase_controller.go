package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schmebulock/server/internal/models"
	"schmebulock/server/internal/serializers"
	"schmebulock/server/internal/services"
)

// PurchaseController управляет API endpoints для покупок
type PurchaseController struct {
	service    *services.PurchaseService
	serializer serializers.PurchaseSerializer
	audit      *services.AuditPublisher
	pageSize   int
}

// NewPurchaseController создает новый контроллер покупок
func NewPurchaseController(service *services.PurchaseService, serializer serializers.PurchaseSerializer, audit *services.AuditPublisher, pageSize int) *PurchaseController {
	return &PurchaseController{service: service, serializer: serializer, audit: audit, pageSize: pageSize}
}

// GetPurchases получает страницу покупок
// GET /api/v1/purchases?page=N&nested=true
func (pc *PurchaseController) GetPurchases(c *gin.Context) {
	offset, limit, page := pageParams(c, pc.pageSize)
	nested := nestedRequested(c)

	purchases, total, err := pc.service.GetAllPurchases(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]serializers.Wire, 0, len(purchases))
	for i := range purchases {
		wire, err := pc.serializer.ToWire(&purchases[i], nested)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results = append(results, wire)
	}

	c.JSON(http.StatusOK, listEnvelope(page, total, results))
}

// GetPurchase получает покупку по ID
// GET /api/v1/purchases/:id
func (pc *PurchaseController) GetPurchase(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	purchase, err := pc.service.GetPurchaseByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	wire, err := pc.serializer.ToWire(purchase, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// GetPurchaseMetadata отдает описание полей покупки, включая выбор валют
// GET /api/v1/purchases/metadata
func (pc *PurchaseController) GetPurchaseMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, serializers.PurchaseMetadata())
}

// CreatePurchase создает новую покупку
// POST /api/v1/purchases
func (pc *PurchaseController) CreatePurchase(c *gin.Context) {
	var payload serializers.PurchaseWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := pc.serializer.Validate(&payload, nil); err != nil {
		respondWriteError(c, err)
		return
	}

	var purchase models.Purchase
	if err := pc.serializer.Apply(&payload, &purchase); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&purchase.Audit, currentUserID(c), true)

	if err := pc.service.CreatePurchase(&purchase); err != nil {
		respondWriteError(c, err)
		return
	}

	pc.audit.Publish("purchase", purchase.ID, services.AuditActionCreate, currentUserID(c))

	// Перечитываем запись со всеми связями для вложенного вида
	created, err := pc.service.GetPurchaseByID(purchase.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wire, err := pc.serializer.ToWire(created, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, wire)
}

// UpdatePurchase частично обновляет покупку
// PATCH /api/v1/purchases/:id
func (pc *PurchaseController) UpdatePurchase(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	purchase, err := pc.service.GetPurchaseByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	var payload serializers.PurchaseWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := pc.serializer.Validate(&payload, purchase); err != nil {
		respondWriteError(c, err)
		return
	}

	if err := pc.serializer.Apply(&payload, purchase); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&purchase.Audit, currentUserID(c), false)

	if err := pc.service.UpdatePurchase(purchase); err != nil {
		respondWriteError(c, err)
		return
	}

	pc.audit.Publish("purchase", purchase.ID, services.AuditActionUpdate, currentUserID(c))

	updated, err := pc.service.GetPurchaseByID(purchase.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wire, err := pc.serializer.ToWire(updated, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// DeletePurchase удаляет покупку
// DELETE /api/v1/purchases/:id
func (pc *PurchaseController) DeletePurchase(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := pc.service.DeletePurchase(id); err != nil {
		respondLookupError(c, err)
		return
	}

	pc.audit.Publish("purchase", id, services.AuditActionDelete, currentUserID(c))

	c.JSON(http.StatusOK, gin.H{"message": "Покупка удалена"})
}
