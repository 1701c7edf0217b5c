// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	StoreHandler   *handler.StoreHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	DeviceHandler  *handler.DeviceHandler
	StaticHandler  *handler.StaticHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	storeHandler   *handler.StoreHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	deviceHandler  *handler.DeviceHandler
	staticHandler  *handler.StaticHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		storeHandler:   params.StoreHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		deviceHandler:  params.DeviceHandler,
		staticHandler:  params.StaticHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate
	adminOnly := []echo.MiddlewareFunc{auth, r.authMiddleware.RequireAdmin}
	upload := middleware.UploadLimit(r.maxUploadSize())

	e.GET("/health", handler.HealthCheck)
	e.GET("/static/*", r.staticHandler.Serve)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/token", r.userHandler.Login)
		authGroup.GET("/users/me", r.userHandler.Me, auth)
	}

	usersGroup := e.Group("/users", adminOnly...)
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id/role", r.userHandler.SetRole)
	}

	storesGroup := e.Group("/stores")
	{
		storesGroup.POST("", r.storeHandler.CreateStore, append(adminOnly, upload)...)
		storesGroup.GET("", r.storeHandler.ListStores, auth)
		storesGroup.GET("/:id", r.storeHandler.GetStore)
		storesGroup.PUT("/:id", r.storeHandler.UpdateStore, auth, upload)
		storesGroup.GET("/:id/qr", r.storeHandler.StoreQRCode, auth)
	}

	productsGroup := e.Group("/products")
	{
		productsGroup.POST("/stores/:storeId", r.productHandler.CreateProduct, auth, upload)
		productsGroup.GET("/stores/:storeId", r.productHandler.ListStoreProducts)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, auth, upload)
	}

	ordersGroup := e.Group("/orders")
	{
		// Public: guests order and track without an account.
		ordersGroup.POST("", r.orderHandler.CreateGuestOrder)
		ordersGroup.GET("/track/:id", r.orderHandler.TrackOrder)
		// The feed authenticates from ?token= itself.
		ordersGroup.GET("/ws/:storeId", r.orderHandler.StoreFeed)

		ordersGroup.POST("/me", r.orderHandler.PlaceCustomerOrder, auth)
		ordersGroup.GET("/me", r.orderHandler.ListMyOrders, auth)
		ordersGroup.GET("/store/:storeId", r.orderHandler.ListOrdersForStore, auth)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateOrderStatus, auth)
	}

	devicesGroup := e.Group("/devices", auth)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

func (r *router) maxUploadSize() int64 {
	if r.config.Storage == nil {
		return 0
	}

	return r.config.Storage.MaxUploadSize
}
