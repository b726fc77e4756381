package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schmebulock/server/internal/models"
	"schmebulock/server/internal/serializers"
	"schmebulock/server/internal/services"
)

// ItemController управляет API endpoints для товаров
type ItemController struct {
	service  *services.ItemService
	audit    *services.AuditPublisher
	pageSize int
}

// NewItemController создает новый контроллер товаров
func NewItemController(service *services.ItemService, audit *services.AuditPublisher, pageSize int) *ItemController {
	return &ItemController{service: service, audit: audit, pageSize: pageSize}
}

// GetItems получает страницу товаров
// GET /api/v1/items?page=N&nested=true
func (ic *ItemController) GetItems(c *gin.Context) {
	offset, limit, page := pageParams(c, ic.pageSize)
	nested := nestedRequested(c)

	items, total, err := ic.service.GetAllItems(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]serializers.Wire, 0, len(items))
	for i := range items {
		wire, err := serializers.ItemSerializer{}.ToWire(&items[i], nested)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results = append(results, wire)
	}

	c.JSON(http.StatusOK, listEnvelope(page, total, results))
}

// GetItem получает товар по ID
// GET /api/v1/items/:id
func (ic *ItemController) GetItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := ic.service.GetItemByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	wire, err := serializers.ItemSerializer{}.ToWire(item, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// GetItemMetadata отдает описание полей товара, включая выбор единиц измерения
// GET /api/v1/items/metadata
func (ic *ItemController) GetItemMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, serializers.ItemMetadata())
}

// CreateItem создает новый товар
// POST /api/v1/items
func (ic *ItemController) CreateItem(c *gin.Context) {
	var payload serializers.ItemWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := (serializers.ItemSerializer{}).Validate(&payload, nil); err != nil {
		respondWriteError(c, err)
		return
	}

	var item models.Item
	if err := (serializers.ItemSerializer{}).Apply(&payload, &item); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&item.Audit, currentUserID(c), true)

	if err := ic.service.CreateItem(&item); err != nil {
		respondWriteError(c, err)
		return
	}

	ic.audit.Publish("item", item.ID, services.AuditActionCreate, currentUserID(c))

	// Перечитываем запись, чтобы отдать связанный бренд
	created, err := ic.service.GetItemByID(item.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wire, err := serializers.ItemSerializer{}.ToWire(created, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, wire)
}

// UpdateItem частично обновляет товар. Допускает смену только единицы
// измерения: каноническое значение при этом не пересчитывается.
// PATCH /api/v1/items/:id
func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := ic.service.GetItemByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	var payload serializers.ItemWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := (serializers.ItemSerializer{}).Validate(&payload, item); err != nil {
		respondWriteError(c, err)
		return
	}

	if err := (serializers.ItemSerializer{}).Apply(&payload, item); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&item.Audit, currentUserID(c), false)

	if err := ic.service.UpdateItem(item); err != nil {
		respondWriteError(c, err)
		return
	}

	ic.audit.Publish("item", item.ID, services.AuditActionUpdate, currentUserID(c))

	updated, err := ic.service.GetItemByID(item.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wire, err := serializers.ItemSerializer{}.ToWire(updated, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// DeleteItem удаляет товар
// DELETE /api/v1/items/:id
func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ic.service.DeleteItem(id); err != nil {
		respondLookupError(c, err)
		return
	}

	ic.audit.Publish("item", id, services.AuditActionDelete, currentUserID(c))

	c.JSON(http.StatusOK, gin.H{"message": "Товар удален"})
}
