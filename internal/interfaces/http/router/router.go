package router

import (
	"github.com/dyqani/backend/internal/infrastructure/config"
	"github.com/dyqani/backend/internal/interfaces/http/handler"
	"github.com/dyqani/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the router wires up
type Handlers struct {
	System   *handler.SystemHandler
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Campaign *handler.CampaignHandler
	Banner   *handler.BannerHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
	Upload   *handler.UploadHandler
}

// Router wires handlers and middleware onto a gin engine
type Router struct {
	engine   *gin.Engine
	handlers Handlers
	jwtCfg   middleware.JWTMiddlewareConfig
	httpCfg  config.HTTPConfig
}

// New creates a new Router
func New(engine *gin.Engine, handlers Handlers, jwtCfg middleware.JWTMiddlewareConfig, httpCfg config.HTTPConfig) *Router {
	return &Router{
		engine:   engine,
		handlers: handlers,
		jwtCfg:   jwtCfg,
		httpCfg:  httpCfg,
	}
}

// Setup registers all routes. The public storefront surface and the auth
// endpoints are open; everything under /admin requires a valid access
// token carrying the admin role.
func (r *Router) Setup() {
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = r.httpCfg.CORSAllowOrigins
	if len(r.httpCfg.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = r.httpCfg.CORSAllowMethods
	}
	if len(r.httpCfg.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = r.httpCfg.CORSAllowHeaders
	}

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CORSWithConfig(corsCfg))

	if r.httpCfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(r.httpCfg.RateLimitRequests, r.httpCfg.RateLimitWindow)
		r.engine.Use(middleware.RateLimit(limiter))
	}

	r.engine.GET("/health", r.handlers.System.Health)
	r.engine.GET("/ready", r.handlers.System.Ready)

	api := r.engine.Group("/api/v1")

	// Public storefront surface
	api.GET("/products", r.handlers.Product.ListStorefront)
	api.GET("/products/:slug", r.handlers.Product.GetStorefront)
	api.GET("/categories", r.handlers.Category.List)
	api.GET("/banners", r.handlers.Banner.ListActive)
	api.GET("/campaigns/active", r.handlers.Campaign.ListRunning)
	api.POST("/orders", r.handlers.Checkout.PlaceOrder)
	api.POST("/orders/batch", r.handlers.Checkout.PlaceBatch)
	api.POST("/uploads", r.handlers.Upload.RequestUpload)

	// Authentication. Login and refresh get their own tighter limiter.
	auth := api.Group("/auth")
	if r.httpCfg.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(r.httpCfg.AuthRateLimitRequests, r.httpCfg.AuthRateLimitWindow)
		auth.POST("/login", middleware.RateLimit(authLimiter), r.handlers.Auth.Login)
		auth.POST("/refresh", middleware.RateLimit(authLimiter), r.handlers.Auth.Refresh)
	} else {
		auth.POST("/login", r.handlers.Auth.Login)
		auth.POST("/refresh", r.handlers.Auth.Refresh)
	}

	authed := auth.Group("")
	authed.Use(middleware.JWTAuth(r.jwtCfg))
	authed.POST("/logout", r.handlers.Auth.Logout)
	authed.GET("/me", r.handlers.Auth.Me)
	authed.POST("/change-password", r.handlers.Auth.ChangePassword)

	// Admin panel
	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(r.jwtCfg))
	admin.Use(middleware.RequireAdmin())

	products := admin.Group("/products")
	products.GET("", r.handlers.Product.List)
	products.POST("", r.handlers.Product.Create)
	products.GET("/:id", r.handlers.Product.Get)
	products.PUT("/:id", r.handlers.Product.Update)
	products.DELETE("/:id", r.handlers.Product.Delete)
	products.PUT("/:id/stock", r.handlers.Product.SetStock)

	categories := admin.Group("/categories")
	categories.GET("", r.handlers.Category.List)
	categories.POST("", r.handlers.Category.Create)
	categories.GET("/:id", r.handlers.Category.Get)
	categories.PUT("/:id", r.handlers.Category.Update)
	categories.DELETE("/:id", r.handlers.Category.Delete)

	campaigns := admin.Group("/campaigns")
	campaigns.GET("", r.handlers.Campaign.List)
	campaigns.POST("", r.handlers.Campaign.Create)
	campaigns.GET("/:id", r.handlers.Campaign.Get)
	campaigns.PUT("/:id", r.handlers.Campaign.Update)
	campaigns.DELETE("/:id", r.handlers.Campaign.Delete)

	banners := admin.Group("/banners")
	banners.GET("", r.handlers.Banner.List)
	banners.POST("", r.handlers.Banner.Create)
	banners.GET("/:id", r.handlers.Banner.Get)
	banners.PUT("/:id", r.handlers.Banner.Update)
	banners.DELETE("/:id", r.handlers.Banner.Delete)

	orders := admin.Group("/orders")
	orders.GET("", r.handlers.Order.List)
	orders.GET("/stats", r.handlers.Order.Stats)
	orders.GET("/batch/:batchId", r.handlers.Order.GetBatch)
	orders.GET("/:id", r.handlers.Order.Get)
	orders.PATCH("/:id/status", r.handlers.Order.UpdateStatus)
	orders.PATCH("/:id/notes", r.handlers.Order.SetNotes)
	orders.DELETE("/:id", r.handlers.Order.Delete)

	uploads := admin.Group("/uploads")
	uploads.GET("/url", r.handlers.Upload.DownloadURL)
	uploads.DELETE("", r.handlers.Upload.Delete)

	users := admin.Group("/users")
	users.POST("", r.handlers.Auth.CreateUser)
}
