package sandbox

import "github.com/gin-gonic/gin"

func (s *Server) registerRoutes(router *gin.Engine) {
	users := router.Group("/users")
	{
		users.POST("/register", s.register)
		users.POST("/login", s.login)
	}

	items := router.Group("/items")
	{
		items.GET("", s.listItems)
		items.POST("/details", s.itemDetails)
		items.POST("", s.authenticate(), s.requireAdmin(), s.createItem)
		items.PUT("/update", s.authenticate(), s.requireAdmin(), s.updateItem)
		items.DELETE("", s.authenticate(), s.requireAdmin(), s.deleteItem)
	}

	cart := router.Group("/cart", s.authenticate())
	{
		cart.GET("", s.getCart)
		cart.POST("/items", s.addCartItem)
		cart.PUT("/items", s.updateCartItem)
		cart.DELETE("/items", s.removeCartItem)
		cart.DELETE("", s.clearCart)
		cart.POST("/checkout", s.checkout)
	}

	orders := router.Group("/orders", s.authenticate())
	{
		orders.GET("/history", s.orderHistory)
		orders.POST("/details", s.orderDetails)
		orders.GET("/all", s.requireAdmin(), s.allOrders)
		orders.POST("/status", s.ordersByStatus)
		orders.PATCH("/status/update", s.requireAdmin(), s.updateOrderStatus)
		orders.DELETE("/cancel", s.cancelOrder)
	}
}
