package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"schmebulock/server/internal/api"
	"schmebulock/server/internal/config"
	"schmebulock/server/internal/database"
	"schmebulock/server/internal/models"
	"schmebulock/server/internal/serializers"
	"schmebulock/server/internal/services"
	"schmebulock/server/internal/utils"
)

func main() {
	// Загружаем переменные окружения из .env файла (если существует)
	// Игнорируем ошибку, если файл не найден (для production окружений)
	if err := godotenv.Load(); err != nil {
		log.Printf("ℹ️ .env файл не найден, используем переменные окружения системы")
	} else {
		log.Printf("✅ Переменные окружения загружены из .env файла")
	}

	cfg := config.Load()

	// Логируем наличие DATABASE_URL (без пароля)
	safeURL := cfg.DatabaseURL
	if idx := strings.Index(safeURL, "@"); idx > 0 {
		if schemeIdx := strings.Index(safeURL, "://"); schemeIdx > 0 {
			safeURL = safeURL[:schemeIdx+3] + "***@" + safeURL[idx+1:]
		}
	}
	log.Printf("📋 DATABASE_URL: %s", safeURL)

	// Подключение к PostgreSQL
	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ PostgreSQL connection failed: %v", err)
	}
	defer database.ClosePostgres(db)

	// Выполняем миграции
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// Подключение к Redis (опционально, кэш географического справочника)
	var redisUtil *utils.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Redis connection failed: %v (continuing without Redis)", err)
		} else {
			redisUtil = utils.NewRedisClient(redisClient)
			defer database.CloseRedis(redisClient)
		}
	} else {
		log.Println("ℹ️ REDIS_URL не установлен, кэш справочника отключен")
	}

	// Kafka producer для журнала аудита (опционально)
	auditPublisher := services.NewAuditPublisher(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
	if auditPublisher == nil {
		log.Println("ℹ️ KAFKA_BROKERS не установлен, журнал аудита отключен")
	}
	defer auditPublisher.Close()

	// Сервисы
	authService := services.NewAuthService(db, cfg.TokenTTL)
	brandService := services.NewBrandService(db)
	storeService := services.NewStoreService(db)
	orderService := services.NewOrderService(db)
	itemService := services.NewItemService(db)
	purchaseService := services.NewPurchaseService(db)
	locationService := services.NewLocationService(db)
	geoService := services.NewGeoService(db, redisUtil)

	// Контроллеры
	authController := api.NewAuthController(authService)
	brandController := api.NewBrandController(brandService, auditPublisher, cfg.PageSize)
	storeController := api.NewStoreController(storeService, auditPublisher, cfg.PageSize)
	orderController := api.NewOrderController(orderService, auditPublisher, cfg.PageSize)
	itemController := api.NewItemController(itemService, auditPublisher, cfg.PageSize)
	purchaseController := api.NewPurchaseController(
		purchaseService,
		serializers.NewPurchaseSerializer(cfg.DefaultCurrency),
		auditPublisher,
		cfg.PageSize,
	)
	locationController := api.NewLocationController(locationService, auditPublisher, cfg.PageSize)
	geoController := api.NewGeoController(geoService, cfg.PageSize)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Создаем пустой движок без лишних прослоек
	r := gin.New()
	r.Use(gin.Recovery())

	// Health check endpoint (должен быть до CORS)
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "Schmebulock Server",
			"version": "1.0.0",
		})
	})

	// Логирование всех запросов
	r.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		log.Printf("🌐 %s %s - Status: %d - Latency: %v", method, path, status, latency)
	})

	// CORS для фронтенда
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	apiGroup := r.Group("/api/v1")

	// Авторизация
	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/logout", api.RequireAuth(authService), authController.Logout)
	}
	log.Println("🔐 Auth endpoints enabled: /api/v1/auth")

	// Все остальные endpoints требуют bearer-токен
	protected := apiGroup.Group("")
	protected.Use(api.RequireAuth(authService))

	brands := protected.Group("/brands")
	{
		brands.GET("", brandController.GetBrands)
		brands.GET("/metadata", brandController.GetBrandMetadata)
		brands.GET("/:id", brandController.GetBrand)
		brands.POST("", brandController.CreateBrand)
		brands.PUT("/:id", brandController.UpdateBrand)
		brands.PATCH("/:id", brandController.UpdateBrand)
		brands.DELETE("/:id", brandController.DeleteBrand)
	}

	stores := protected.Group("/stores")
	{
		stores.GET("", storeController.GetStores)
		stores.GET("/metadata", storeController.GetStoreMetadata)
		stores.GET("/:id", storeController.GetStore)
		stores.POST("", storeController.CreateStore)
		stores.PUT("/:id", storeController.UpdateStore)
		stores.PATCH("/:id", storeController.UpdateStore)
		stores.DELETE("/:id", storeController.DeleteStore)
	}

	orders := protected.Group("/orders")
	{
		orders.GET("", orderController.GetOrders)
		orders.GET("/metadata", orderController.GetOrderMetadata)
		orders.GET("/:id", orderController.GetOrder)
		orders.POST("", orderController.CreateOrder)
		orders.PUT("/:id", orderController.UpdateOrder)
		orders.PATCH("/:id", orderController.UpdateOrder)
		orders.DELETE("/:id", orderController.DeleteOrder)
	}

	items := protected.Group("/items")
	{
		items.GET("", itemController.GetItems)
		items.GET("/metadata", itemController.GetItemMetadata)
		items.GET("/:id", itemController.GetItem)
		items.POST("", itemController.CreateItem)
		items.PUT("/:id", itemController.UpdateItem)
		items.PATCH("/:id", itemController.UpdateItem)
		items.DELETE("/:id", itemController.DeleteItem)
	}

	purchases := protected.Group("/purchases")
	{
		purchases.GET("", purchaseController.GetPurchases)
		purchases.GET("/metadata", purchaseController.GetPurchaseMetadata)
		purchases.GET("/:id", purchaseController.GetPurchase)
		purchases.POST("", purchaseController.CreatePurchase)
		purchases.PUT("/:id", purchaseController.UpdatePurchase)
		purchases.PATCH("/:id", purchaseController.UpdatePurchase)
		purchases.DELETE("/:id", purchaseController.DeletePurchase)
	}

	locations := protected.Group("/locations")
	{
		locations.GET("", locationController.GetLocations)
		locations.GET("/metadata", locationController.GetLocationMetadata)
		locations.GET("/:id", locationController.GetLocation)
		locations.POST("", locationController.CreateLocation)
		locations.PUT("/:id", locationController.UpdateLocation)
		locations.PATCH("/:id", locationController.UpdateLocation)
		locations.DELETE("/:id", locationController.DeleteLocation)
	}

	// Географический справочник (только чтение)
	districts := protected.Group("/districts")
	{
		districts.GET("", geoController.GetDistricts)
		districts.GET("/:id", geoController.GetDistrict)
	}

	log.Println("📦 CRUD endpoints enabled: brands, stores, orders, items, purchases, locations, districts")

	// Периодическая очистка протухших токенов
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if removed, err := authService.CleanupExpiredTokens(); err != nil {
				log.Printf("⚠️ Ошибка очистки токенов: %v", err)
			} else if removed > 0 {
				log.Printf("🧹 Удалено протухших токенов: %d", removed)
			}
		}
	}()

	port := cfg.ServerPort
	log.Printf("🚀 Server starting on port %s", port)
	log.Printf("📡 API доступен на http://0.0.0.0:%s/api/v1", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
