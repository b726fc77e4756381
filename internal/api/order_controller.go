package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schmebulock/server/internal/models"
	"schmebulock/server/internal/serializers"
	"schmebulock/server/internal/services"
)

// OrderController управляет API endpoints для заказов
type OrderController struct {
	service  *services.OrderService
	audit    *services.AuditPublisher
	pageSize int
}

// NewOrderController создает новый контроллер заказов
func NewOrderController(service *services.OrderService, audit *services.AuditPublisher, pageSize int) *OrderController {
	return &OrderController{service: service, audit: audit, pageSize: pageSize}
}

// GetOrders получает страницу заказов
// GET /api/v1/orders?page=N&nested=true
func (oc *OrderController) GetOrders(c *gin.Context) {
	offset, limit, page := pageParams(c, oc.pageSize)
	nested := nestedRequested(c)

	orders, total, err := oc.service.GetAllOrders(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]serializers.Wire, 0, len(orders))
	for i := range orders {
		wire, err := serializers.OrderSerializer{}.ToWire(&orders[i], nested)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results = append(results, wire)
	}

	c.JSON(http.StatusOK, listEnvelope(page, total, results))
}

// GetOrder получает заказ по ID
// GET /api/v1/orders/:id
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := oc.service.GetOrderByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	wire, err := serializers.OrderSerializer{}.ToWire(order, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// GetOrderMetadata отдает описание полей заказа
// GET /api/v1/orders/metadata
func (oc *OrderController) GetOrderMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, serializers.OrderMetadata())
}

// CreateOrder создает новый заказ
// POST /api/v1/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var payload serializers.OrderWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := (serializers.OrderSerializer{}).Validate(&payload, nil); err != nil {
		respondWriteError(c, err)
		return
	}

	var order models.Order
	if err := (serializers.OrderSerializer{}).Apply(&payload, &order); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&order.Audit, currentUserID(c), true)

	if err := oc.service.CreateOrder(&order); err != nil {
		respondWriteError(c, err)
		return
	}

	oc.audit.Publish("order", order.ID, services.AuditActionCreate, currentUserID(c))

	// Перечитываем запись, чтобы отдать связанный магазин
	created, err := oc.service.GetOrderByID(order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wire, err := serializers.OrderSerializer{}.ToWire(created, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, wire)
}

// UpdateOrder частично обновляет заказ
// PATCH /api/v1/orders/:id
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := oc.service.GetOrderByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	var payload serializers.OrderWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := (serializers.OrderSerializer{}).Validate(&payload, order); err != nil {
		respondWriteError(c, err)
		return
	}

	if err := (serializers.OrderSerializer{}).Apply(&payload, order); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&order.Audit, currentUserID(c), false)

	if err := oc.service.UpdateOrder(order); err != nil {
		respondWriteError(c, err)
		return
	}

	oc.audit.Publish("order", order.ID, services.AuditActionUpdate, currentUserID(c))

	updated, err := oc.service.GetOrderByID(order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wire, err := serializers.OrderSerializer{}.ToWire(updated, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// DeleteOrder удаляет заказ
// DELETE /api/v1/orders/:id
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := oc.service.DeleteOrder(id); err != nil {
		respondLookupError(c, err)
		return
	}

	oc.audit.Publish("order", id, services.AuditActionDelete, currentUserID(c))

	c.JSON(http.StatusOK, gin.H{"message": "Заказ удален"})
}
