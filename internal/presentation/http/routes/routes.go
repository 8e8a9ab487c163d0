package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"tillpoint/internal/config"
	"tillpoint/internal/presentation/http/handler"
	"tillpoint/internal/presentation/http/middleware"
	"tillpoint/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Promotion *handler.PromotionHandler
	Pos       *handler.PosHandler
	Sale      *handler.SaleHandler
	Settings  *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-operator rate limiter
		rateLimiter := middleware.NewOperatorRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.Profile)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	registerProductRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerPromotionRoutes(protected, h)
	registerPosRoutes(protected, h)
	registerSaleRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerPromotionRoutes(protected *gin.RouterGroup, h *Handlers) {
	promotions := protected.Group("/promotions")
	{
		promotions.GET("", h.Promotion.List)
		promotions.POST("", h.Promotion.Create)
		promotions.GET("/active", h.Promotion.ListActive)
		promotions.GET("/:id", h.Promotion.Get)
		promotions.PUT("/:id/active", h.Promotion.SetActive)
		promotions.DELETE("/:id", h.Promotion.Delete)
	}
}

func registerPosRoutes(protected *gin.RouterGroup, h *Handlers) {
	pos := protected.Group("/pos/sessions")
	{
		pos.POST("", h.Pos.OpenSession)
		pos.DELETE("/:sessionId", h.Pos.CloseSession)
		pos.GET("/:sessionId/cart", h.Pos.GetCart)
		pos.POST("/:sessionId/cart/items", h.Pos.AddItem)
		pos.PUT("/:sessionId/cart/quantity", h.Pos.SetQuantity)
		pos.PUT("/:sessionId/cart/tier", h.Pos.SelectTier)
		pos.DELETE("/:sessionId/cart/items", h.Pos.RemoveItem)
		pos.DELETE("/:sessionId/cart", h.Pos.ClearCart)
		pos.PUT("/:sessionId/customer", h.Pos.SetCustomer)
		pos.PUT("/:sessionId/payment", h.Pos.SetPayment)
		pos.POST("/:sessionId/checkout", h.Pos.Checkout)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.GET("/outstanding", h.Sale.Outstanding)
		sales.GET("/summary/daily", h.Sale.DailySummary)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/receipt", h.Sale.Receipt)
		sales.POST("/:id/pay", h.Sale.RecordPayment)
	}
}
