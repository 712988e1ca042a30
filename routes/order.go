package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/ngocthanh-dev/cafe-admin-api/controllers/order"
	"github.com/ngocthanh-dev/cafe-admin-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Checkout: create a new order
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Filtered list with count and revenue aggregates
		orders.GET("", orderControllers.ListOrdersHandler(db))

		// Websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Order header plus line items
		orders.GET("/:orderID", orderControllers.GetOrderDetailHandler(db))

		// Delete an order and its items
		orders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
	}
}
