// Package router registers the app shell routes.
package router

import (
	"pos/config"
	"pos/internal/delivery/api/middleware"
	"pos/internal/delivery/api/router/handler"
	"pos/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config               *config.Config
	SessionHandler       *handler.SessionHandler
	CatalogHandler       *handler.CatalogHandler
	OrderHandler         *handler.OrderHandler
	ProductHandler       *handler.ProductHandler
	ConfigurationHandler *handler.ConfigurationHandler
	SessionMiddleware    *middleware.SessionMiddleware
	Metrics              *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	config               *config.Config
	sessionHandler       *handler.SessionHandler
	catalogHandler       *handler.CatalogHandler
	orderHandler         *handler.OrderHandler
	productHandler       *handler.ProductHandler
	configurationHandler *handler.ConfigurationHandler
	sessionMiddleware    *middleware.SessionMiddleware
	metrics              *metrics.Metrics
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		config:               params.Config,
		sessionHandler:       params.SessionHandler,
		catalogHandler:       params.CatalogHandler,
		orderHandler:         params.OrderHandler,
		productHandler:       params.ProductHandler,
		configurationHandler: params.ConfigurationHandler,
		sessionMiddleware:    params.SessionMiddleware,
		metrics:              params.Metrics,
	}
}

// RegisterRoutes sets up all the app shell routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	app := e.Group("/app")

	// reachable without a session
	app.GET("/view", r.sessionHandler.View)
	app.POST("/session/login", r.sessionHandler.Login)

	authed := app.Group("", r.sessionMiddleware.RequireSession)
	{
		authed.POST("/session/logout", r.sessionHandler.Logout)
		authed.GET("/session/me", r.sessionHandler.Me)

		authed.GET("/catalog/categories", r.catalogHandler.Categories)
		authed.GET("/catalog/subcategories", r.catalogHandler.Subcategories)
		authed.GET("/catalog/products", r.catalogHandler.Products)

		authed.GET("/order", r.orderHandler.Summary)
		authed.POST("/order/items", r.orderHandler.AddItem)
		authed.DELETE("/order/items/:id", r.orderHandler.RemoveItem)
		authed.GET("/order/receipt", r.orderHandler.Receipt)
		authed.GET("/order/receipt/qr", r.orderHandler.ReceiptQR)

		authed.GET("/configuration", r.configurationHandler.Current)
		authed.PUT("/language", r.configurationHandler.SetLanguage)
	}

	admin := authed.Group("/admin", r.sessionMiddleware.RequireAdmin)
	{
		admin.POST("/products", r.productHandler.Create)
		admin.GET("/products/:id", r.productHandler.Form)
		admin.PATCH("/products/:id", r.productHandler.Update)
		admin.DELETE("/products/:id", r.productHandler.Delete)
		admin.POST("/products/:id/image", r.productHandler.UploadImage)

		admin.GET("/configuration", r.configurationHandler.Load)
		admin.PATCH("/configuration", r.configurationHandler.Save)
	}
}
