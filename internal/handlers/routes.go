package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kosarica/price-comparator/internal/middleware"
)

// RouteOptions configures the /api group
type RouteOptions struct {
	// APIKey guards mutating routes; empty disables the check
	APIKey string
	// RateLimiter limits /api per client IP; nil disables limiting
	RateLimiter *middleware.IPRateLimiter
}

// RegisterRoutes mounts the health check and the /api group on router.
func RegisterRoutes(router gin.IRouter, opts RouteOptions) {
	router.GET("/health", HealthCheck)

	api := router.Group("/api")
	if opts.RateLimiter != nil {
		api.Use(middleware.RateLimitMiddleware(opts.RateLimiter))
	}
	auth := middleware.APIKeyAuth(opts.APIKey)

	products := api.Group("/products")
	{
		products.GET("", ListProducts)
		products.GET("/:id", GetProduct)
	}

	api.GET("/compare/:productId", ComparePrices)
	api.GET("/history/:productId", GetPriceHistory)
	api.GET("/alternative/:productId", GetAlternative)

	discounts := api.Group("/discounts")
	{
		discounts.GET("/active", ActiveDiscounts)
		discounts.GET("/best", BestDiscounts)
		discounts.GET("/new", NewDiscounts)
	}

	basket := api.Group("/basket")
	{
		basket.GET("/optimize", OptimizeBasketQuery)
		basket.POST("/optimize", OptimizeBasket)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("/check", CheckPrice)
		alerts.GET("/active", ListActiveAlerts)
		alerts.GET("/due", ListDueAlerts)
		alerts.POST("", auth, CreateAlert)
		alerts.PUT("/:id/trigger", auth, TriggerAlert)
	}

	api.POST("/ingest", auth, TriggerIngestion)
}
