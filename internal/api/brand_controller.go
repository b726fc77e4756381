package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schmebulock/server/internal/models"
	"schmebulock/server/internal/serializers"
	"schmebulock/server/internal/services"
)

// BrandController управляет API endpoints для брендов
type BrandController struct {
	service  *services.BrandService
	audit    *services.AuditPublisher
	pageSize int
}

// NewBrandController создает новый контроллер брендов
func NewBrandController(service *services.BrandService, audit *services.AuditPublisher, pageSize int) *BrandController {
	return &BrandController{service: service, audit: audit, pageSize: pageSize}
}

// GetBrands получает страницу брендов
// GET /api/v1/brands?page=N
func (bc *BrandController) GetBrands(c *gin.Context) {
	offset, limit, page := pageParams(c, bc.pageSize)
	nested := nestedRequested(c)

	brands, total, err := bc.service.GetAllBrands(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]serializers.Wire, 0, len(brands))
	for i := range brands {
		wire, err := serializers.BrandSerializer{}.ToWire(&brands[i], nested)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results = append(results, wire)
	}

	c.JSON(http.StatusOK, listEnvelope(page, total, results))
}

// GetBrand получает бренд по ID
// GET /api/v1/brands/:id
func (bc *BrandController) GetBrand(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	brand, err := bc.service.GetBrandByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	wire, err := serializers.BrandSerializer{}.ToWire(brand, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// GetBrandMetadata отдает описание полей бренда
// GET /api/v1/brands/metadata
func (bc *BrandController) GetBrandMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, serializers.BrandMetadata())
}

// CreateBrand создает новый бренд
// POST /api/v1/brands
func (bc *BrandController) CreateBrand(c *gin.Context) {
	var payload serializers.BrandWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := (serializers.BrandSerializer{}).Validate(&payload, nil); err != nil {
		respondWriteError(c, err)
		return
	}

	var brand models.Brand
	if err := (serializers.BrandSerializer{}).Apply(&payload, &brand); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&brand.Audit, currentUserID(c), true)

	if err := bc.service.CreateBrand(&brand); err != nil {
		respondWriteError(c, err)
		return
	}

	bc.audit.Publish("brand", brand.ID, services.AuditActionCreate, currentUserID(c))

	wire, err := serializers.BrandSerializer{}.ToWire(&brand, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, wire)
}

// UpdateBrand частично обновляет бренд
// PATCH /api/v1/brands/:id
func (bc *BrandController) UpdateBrand(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	brand, err := bc.service.GetBrandByID(id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	var payload serializers.BrandWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные данные",
			"details": err.Error(),
		})
		return
	}

	if err := (serializers.BrandSerializer{}).Validate(&payload, brand); err != nil {
		respondWriteError(c, err)
		return
	}

	if err := (serializers.BrandSerializer{}).Apply(&payload, brand); err != nil {
		respondWriteError(c, err)
		return
	}
	stampActor(&brand.Audit, currentUserID(c), false)

	if err := bc.service.UpdateBrand(brand); err != nil {
		respondWriteError(c, err)
		return
	}

	bc.audit.Publish("brand", brand.ID, services.AuditActionUpdate, currentUserID(c))

	wire, err := serializers.BrandSerializer{}.ToWire(brand, nestedRequested(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wire)
}

// DeleteBrand удаляет бренд
// DELETE /api/v1/brands/:id
func (bc *BrandController) DeleteBrand(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := bc.service.DeleteBrand(id); err != nil {
		respondLookupError(c, err)
		return
	}

	bc.audit.Publish("brand", id, services.AuditActionDelete, currentUserID(c))

	c.JSON(http.StatusOK, gin.H{"message": "Бренд удален"})
}
