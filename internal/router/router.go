// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scmdash/scm-backend/internal/config"
	"github.com/scmdash/scm-backend/internal/handlers"
	"github.com/scmdash/scm-backend/internal/hooks"
	"github.com/scmdash/scm-backend/internal/metrics"
	"github.com/scmdash/scm-backend/internal/middleware"
)

// Initialize wires every dashboard route onto a new engine. limiter may be
// nil to disable rate limiting.
func Initialize(cfg *config.Config, manager *hooks.Manager, limiter *middleware.RateLimiter) *gin.Engine {
	// Initialize handlers
	inventoryHandler := handlers.NewInventoryHandler(manager)
	customerHandler := handlers.NewCustomerHandler(manager)
	supplierHandler := handlers.NewSupplierHandler(manager)
	productHandler := handlers.NewProductHandler(manager)
	shipmentHandler := handlers.NewShipmentHandler(manager)
	summaryHandler := handlers.NewSummaryHandler(manager)
	orderHandler := handlers.NewOrderHandler(manager)
	insightsHandler := handlers.NewInsightsHandler(manager)
	sessionHandler := handlers.NewSessionHandler(manager)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.Session())
	if limiter != nil {
		r.Use(limiter.Middleware())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API v1 routes
	v1 := r.Group("/v1")
	{
		inventory := v1.Group("/inventory")
		inventory.GET("/summary", summaryHandler.Inventory)
		inventoryHandler.Register(inventory)

		customers := v1.Group("/customers")
		customers.GET("/summary", summaryHandler.Customers)
		customerHandler.Register(customers)

		suppliers := v1.Group("/suppliers")
		suppliers.GET("/summary", summaryHandler.Suppliers)
		supplierHandler.Register(suppliers)

		products := v1.Group("/products")
		products.GET("/summary", summaryHandler.Products)
		products.GET("/categories", summaryHandler.ProductCategories)
		productHandler.Register(products)

		shipments := v1.Group("/shipments")
		shipments.GET("/summary", summaryHandler.Shipments)
		shipmentHandler.Register(shipments)

		// Orders are mutated in session state only
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.List)
			orders.GET("/export", orderHandler.Export)
			orders.GET("/:id", orderHandler.Get)
			orders.PUT("/:id/status", orderHandler.UpdateStatus)
			orders.POST("/:id/notes", orderHandler.AddNote)
			orders.GET("/:id/insights", orderHandler.Insights)
		}

		insights := v1.Group("/insights")
		{
			insights.GET("/status", insightsHandler.Status)
			insights.POST("/configure", insightsHandler.Configure)
			insights.GET("/models", insightsHandler.Models)
			insights.POST("/models/:id/train", insightsHandler.TrainModel)
			insights.GET("/recommendations", insightsHandler.Recommendations)
			insights.GET("/anomalies", insightsHandler.Anomalies)
			insights.GET("/forecasts", insightsHandler.Forecasts)
			insights.GET("/shipments", insightsHandler.Shipments)
			insights.GET("/shipments/:id/delay", insightsHandler.PredictDelay)
			insights.GET("/routes", insightsHandler.OptimizeRoutes)
			insights.GET("/inventory", insightsHandler.OptimizeInventory)
			insights.GET("/demand/:id", insightsHandler.ForecastDemand)
		}

		v1.GET("/notifications", sessionHandler.Notifications)
		v1.DELETE("/notifications", sessionHandler.ClearNotifications)
		v1.DELETE("/session", sessionHandler.Reset)
	}

	return r
}
