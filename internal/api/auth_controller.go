package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"schmebulock/server/internal/services"
)

// AuthController управляет API endpoints для авторизации
type AuthController struct {
	service *services.AuthService
}

// NewAuthController создает новый контроллер авторизации
func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login обрабатывает вход и выдает bearer-токен
// POST /api/v1/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные параметры запроса",
			"details": err.Error(),
		})
		return
	}

	token, err := ac.service.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный логин или пароль"})
		return
	}

	username := req.Username
	if token.User != nil {
		username = token.User.Username
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token.Token,
		"user_id":    token.UserID,
		"username":   username,
		"expires_at": token.ExpiresAt.Unix(),
	})
}

// RegisterRequest представляет запрос на создание пользователя
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register создает нового пользователя
// POST /api/v1/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Неверные параметры запроса",
			"details": err.Error(),
		})
		return
	}

	user, err := ac.service.RegisterUser(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
	})
}

// Logout отзывает токен из заголовка Authorization
// POST /api/v1/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Токен не передан"})
		return
	}

	if err := ac.service.Logout(parts[1]); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Токен отозван"})
}
