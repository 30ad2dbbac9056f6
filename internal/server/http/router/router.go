package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

const eventsPath = "/api/admin/orders/events"

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	// compressed writers buffer the event stream
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{eventsPath})))

	authHandler := handlers.NewAuthHandler(facade)
	storeHandler := handlers.NewStoreHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	metricsHandler := handlers.NewMetricsHandler(facade)
	eventsHandler := handlers.NewEventsHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/confirm", orderHandler.Confirm)

	api := engine.Group("/api")
	api.GET("/store", storeHandler.Get)
	api.GET("/categories", catalogHandler.Categories)
	api.GET("/products", catalogHandler.Browse)
	api.POST("/orders", orderHandler.Checkout)

	admin := api.Group("/admin")
	admin.POST("/login", authHandler.Login)
	admin.POST("/logout", authHandler.Logout)
	admin.GET("/session", authHandler.Session)

	adminAuth := admin.Group("")
	adminAuth.Use(middleware.AdminRequired(facade))
	adminAuth.GET("/products", catalogHandler.List)
	adminAuth.POST("/products", catalogHandler.Create)
	adminAuth.POST("/products/assist", catalogHandler.Assist)
	adminAuth.PUT("/products/:id", catalogHandler.Update)
	adminAuth.DELETE("/products/:id", catalogHandler.Delete)
	adminAuth.GET("/orders", orderHandler.List)
	adminAuth.GET("/orders/events", eventsHandler.Stream)
	adminAuth.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	adminAuth.POST("/orders/:id/notify", orderHandler.Notify)
	adminAuth.GET("/metrics", metricsHandler.Get)
	adminAuth.PUT("/store/status", storeHandler.SetStatus)

	return engine
}
