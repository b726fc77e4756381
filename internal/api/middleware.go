package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"schmebulock/server/internal/models"
	"schmebulock/server/internal/services"
)

// ContextUserKey — ключ текущего пользователя в контексте gin
const ContextUserKey = "current_user"

// RequireAuth проверяет заголовок Authorization: Bearer <token>
// и кладет аутентифицированного пользователя в контекст запроса
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Требуется заголовок Authorization"})
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Ожидается схема Bearer"})
			c.Abort()
			return
		}

		user, err := authService.Authenticate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Недействительный токен"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// currentUserID возвращает ID аутентифицированного пользователя, если он есть
func currentUserID(c *gin.Context) *uint {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return &user.ID
}
