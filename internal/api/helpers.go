package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"schmebulock/server/internal/models"
	"schmebulock/server/internal/serializers"
)

// pageParams извлекает номер страницы из query параметра ?page=N
// и возвращает offset/limit для выборки
func pageParams(c *gin.Context, pageSize int) (offset, limit, page int) {
	page = 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return (page - 1) * pageSize, pageSize, page
}

// nestedRequested проверяет флаг ?nested=. Клиенты передают значение
// по-разному (true/True/1), поэтому вложенный вид включает любое
// непустое значение, кроме явно ложных "0" и "false".
func nestedRequested(c *gin.Context) bool {
	switch strings.ToLower(c.Query("nested")) {
	case "", "0", "false":
		return false
	}
	return true
}

// idParam парсит числовой :id, отвечая 404 при некорректном значении
func idParam(c *gin.Context) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Некорректный идентификатор"})
		return 0, false
	}
	return uint(parsed), true
}

// respondLookupError отвечает 404 для отсутствующей записи, иначе 500
func respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// respondWriteError отвечает на ошибку создания/обновления.
// Ошибки валидации отдаются телом с разбивкой по полям,
// отсутствующие ссылки и прочие ошибки записи — 400.
func respondWriteError(c *gin.Context, err error) {
	var verrs *serializers.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, verrs.Body())
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// listEnvelope собирает ответ списка с пагинацией
func listEnvelope(page int, total int64, results []serializers.Wire) gin.H {
	return gin.H{
		"count":   total,
		"page":    page,
		"results": results,
	}
}

// stampActor заполняет поля аудита текущим пользователем
func stampActor(a *models.Audit, actorID *uint, create bool) {
	if create {
		a.CreatedByID = actorID
	}
	a.ModifiedByID = actorID
}
