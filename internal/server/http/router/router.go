package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/plateful/takeaway/internal/domain/model"
	"github.com/plateful/takeaway/internal/server/http/handlers"
	"github.com/plateful/takeaway/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.TakeawayFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/staff/orders/feed"})))

	authHandler := handlers.NewAuthHandler(facade)
	menuHandler := handlers.NewMenuHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	kitchenHandler := handlers.NewKitchenHandler(facade)
	managerHandler := handlers.NewManagerHandler(facade)
	feedHandler := handlers.NewFeedHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	api.GET("/menu", menuHandler.List)
	api.GET("/pickup/slots", orderHandler.Slots)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/auth/session", authHandler.Session)
	authed.GET("/cart", cartHandler.Get)
	authed.POST("/cart/items", cartHandler.AddItem)
	authed.PUT("/cart/items/:id", cartHandler.SetQuantity)
	authed.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	authed.DELETE("/cart", cartHandler.Clear)
	authed.POST("/orders", orderHandler.Checkout)

	kitchen := authed.Group("/kitchen")
	kitchen.Use(middleware.RoleRequired(model.RoleKitchen, model.RoleManager))
	kitchen.GET("/orders", kitchenHandler.List)
	kitchen.POST("/orders/:id/advance", kitchenHandler.Advance)

	manager := authed.Group("/manager")
	manager.Use(middleware.RoleRequired(model.RoleManager))
	manager.GET("/orders", managerHandler.List)
	manager.GET("/orders/:id", managerHandler.Detail)
	manager.PUT("/orders/:id/status", managerHandler.SetStatus)

	staff := authed.Group("/staff")
	staff.Use(middleware.RoleRequired(model.RoleKitchen, model.RoleManager))
	staff.GET("/orders/feed", feedHandler.Stream)

	return engine
}
