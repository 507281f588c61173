package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/texnokross/texnokross/internal/interfaces/http/handlers"
)

type OrderRouteConfig struct {
	OrderHandler *handlers.OrderHandler
	// CreateLimit guards order creation when set.
	CreateLimit gin.HandlerFunc
}

func SetupOrderRoutes(api *gin.RouterGroup, cfg *OrderRouteConfig) {
	orders := api.Group("/orders")
	{
		orders.POST("", withLimit(cfg.CreateLimit, cfg.OrderHandler.CreateOrder)...)
		orders.GET("", cfg.OrderHandler.ListOrders)
		orders.GET("/:id", cfg.OrderHandler.GetOrder)
		orders.POST("/:id/delivered", cfg.OrderHandler.MarkDelivered)
	}
}

func withLimit(limit gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	if limit == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{limit, h}
}
