// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	CatalogHandler *handler.CatalogHandler
	ChatHandler    *handler.ChatHandler
	MediaHandler   *handler.MediaHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	catalogHandler *handler.CatalogHandler
	chatHandler    *handler.ChatHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		catalogHandler: params.CatalogHandler,
		chatHandler:    params.ChatHandler,
		mediaHandler:   params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)

		changeGroup := authGroup.Group("")
		changeGroup.Use(r.authMiddleware.Authenticate)
		changeGroup.POST("/change-password", r.authHandler.ChangePassword)
	}

	// Public catalog browsing
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)
	e.GET("/products/:id/variants", r.catalogHandler.ListVariants)
	e.GET("/categories", r.catalogHandler.ListCategories)
	e.GET("/brands", r.catalogHandler.ListBrands)

	// AI shopping assistant
	e.POST("/chat", r.chatHandler.Chat)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.authHandler.GetProfile)

		userGroup.GET("/cart", r.cartHandler.GetCart)
		userGroup.DELETE("/cart", r.cartHandler.ClearCart)
		userGroup.POST("/cart/items", r.cartHandler.AddToCart)
		userGroup.PUT("/cart/items/:id", r.cartHandler.UpdateItem)
		userGroup.DELETE("/cart/items/:id", r.cartHandler.RemoveItem)

		userGroup.POST("/orders", r.orderHandler.CreateOrder)
		userGroup.GET("/orders", r.orderHandler.ListOrders)
		userGroup.GET("/orders/:id", r.orderHandler.GetOrder)
	}

	// Admin routes that require authentication and the ADMIN role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/upload", r.mediaHandler.UploadImage)
		adminGroup.DELETE("/upload/:key", r.mediaHandler.DeleteImage)

		adminGroup.GET("/products", r.catalogHandler.ListAllProducts)
		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
		adminGroup.POST("/products/:id/variants", r.catalogHandler.CreateVariant)
		adminGroup.PUT("/variants/:id", r.catalogHandler.UpdateVariant)
		adminGroup.DELETE("/variants/:id", r.catalogHandler.DeleteVariant)

		adminGroup.POST("/categories", r.catalogHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.catalogHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.catalogHandler.DeleteCategory)

		adminGroup.POST("/brands", r.catalogHandler.CreateBrand)
		adminGroup.PUT("/brands/:id", r.catalogHandler.UpdateBrand)
		adminGroup.DELETE("/brands/:id", r.catalogHandler.DeleteBrand)

		adminGroup.GET("/orders", r.orderHandler.ListAllOrders)
		adminGroup.PUT("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
	}
}
