package router

import (
	"fmt"
	"strings"

	"github.com/cayro-uniformes/internal/cache"
	"github.com/cayro-uniformes/internal/config"
	"github.com/cayro-uniformes/internal/constants"
	adminhandlers "github.com/cayro-uniformes/internal/http/handlers/admin"
	storehandlers "github.com/cayro-uniformes/internal/http/handlers/store"
	"github.com/cayro-uniformes/internal/logger"
	"github.com/cayro-uniformes/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter inicializa el enrutador
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// Handlers por zona (tienda / administración)
	storeHandler := storehandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	recommendationRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:recommendation", redisPrefix),
		WindowSeconds: cfg.Recommendation.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Recommendation.RateLimit.MaxRequests,
		MessageKey:    "error.too_many_requests",
	}
	redisClient := cache.Client()

	// Middlewares
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// Catálogo público
		apiV1.GET("/products", storeHandler.ListProducts)
		apiV1.GET("/products/:id", storeHandler.GetProduct)
		apiV1.GET("/faqs", storeHandler.ListFaqs)

		// Carrito
		cart := apiV1.Group("/cart")
		{
			cart.POST("", storeHandler.CreateCart)
			cart.GET("/user/:user_id", storeHandler.GetCartByUser)
			cart.POST("/items", storeHandler.AddCartItem)
			cart.PATCH("/items/:item_id", storeHandler.UpdateCartItem)
			cart.DELETE("/items/:item_id", storeHandler.DeleteCartItem)
			cart.DELETE("/:cart_id/clear", storeHandler.ClearCart)
			cart.DELETE("/:cart_id", storeHandler.DeleteCart)
		}

		// Recomendaciones (limitadas por IP)
		recommendation := apiV1.Group("/recommendation")
		recommendation.Use(RateLimitMiddleware(redisClient, recommendationRule, KeyByIP))
		{
			recommendation.POST("", storeHandler.RecommendForProduct)
			recommendation.POST("/carrito", storeHandler.RecommendForCart)
		}

		// Ventas del comprador
		sales := apiV1.Group("/sales")
		{
			sales.GET("/user/:user_id", storeHandler.ListUserSales)
			sales.PATCH("/:id/status", storeHandler.UpdateSaleStatus)
			sales.POST("/:id/confirm", storeHandler.ConfirmSale)
		}

		// Administración
		admin := apiV1.Group("/admin")
		{
			adminHandler.RegisterCatalogResources(admin)

			// Productos
			admin.GET("/products", adminHandler.ListProducts)
			admin.GET("/products/:id", adminHandler.GetProduct)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PATCH("/products/:id", adminHandler.UpdateProduct)
			admin.PATCH("/products/:id/activate", adminHandler.ActivateProduct)
			admin.PATCH("/products/:id/deactivate", adminHandler.DeactivateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			// Inventario
			admin.GET("/inventory", adminHandler.ListInventory)
			admin.GET("/inventory/stats", adminHandler.GetInventoryStats)
			admin.GET("/inventory/low-stock", adminHandler.ListLowStock)
			admin.GET("/inventory/product/:id", adminHandler.GetInventoryProduct)
			admin.GET("/inventory/product/:id/variants", adminHandler.ListInventoryProductVariants)
			admin.PATCH("/inventory/variant/:id/stock", adminHandler.AdjustVariantStock)

			// Ventas
			admin.GET("/sales", adminHandler.ListSales)
			admin.GET("/sales/orders", adminHandler.ListActiveOrders)
			admin.GET("/sales/:id", adminHandler.GetSale)
		}
	}

	// Salud
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
