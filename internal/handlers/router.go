package handlers

import (
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth     *AuthHandler
	Products *ProductHandler
	Category *CategoryHandler
	Orders   *OrderHandler
	Payments *PaymentHandler
	Repairs  *RepairHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, jwtSecret string) {
	api := r.Group("/api")
	{
		api.POST("/registro", h.Auth.Register)
		api.POST("/login", h.Auth.Login)

		api.GET("/productos", h.Products.GetProducts)
		api.GET("/productos/:id", h.Products.GetProductByID)
		api.GET("/categorias", h.Category.GetCategories)
		api.GET("/metodos-pago", h.Payments.GetMethods)

		api.POST("/reparaciones", h.Repairs.CreateRequest)
		api.GET("/reparaciones/:codigo", h.Repairs.GetRequestByCode)

		protected := api.Group("/")
		protected.Use(AuthMiddleware(jwtSecret))
		{
			protected.POST("/orders", h.Orders.CreateOrder)
			protected.GET("/orders", h.Orders.GetOrders)
			protected.GET("/orders/:id", h.Orders.GetOrderByID)
			protected.DELETE("/orders/:id", AdminMiddleware(), h.Orders.DeleteOrder)
			protected.PUT("/orders/:id/estado", AdminMiddleware(), h.Orders.UpdateOrderStatus)

			admin := protected.Group("/admin")
			admin.Use(AdminMiddleware())
			{
				admin.POST("/productos", h.Products.CreateProduct)
				admin.GET("/productos", h.Products.GetProductsAdmin)
				admin.PUT("/productos/:id", h.Products.UpdateProduct)
				admin.DELETE("/productos/:id", h.Products.DeleteProduct)

				admin.POST("/categorias", h.Category.CreateCategory)
				admin.PUT("/categorias/:id", h.Category.UpdateCategory)
				admin.DELETE("/categorias/:id", h.Category.DeleteCategory)

				admin.GET("/usuarios", h.Auth.GetUsers)
				admin.DELETE("/usuarios/:id", h.Auth.DeleteUser)

				admin.GET("/reparaciones", h.Repairs.GetRequests)
				admin.GET("/reparaciones/:id", h.Repairs.GetRequestByID)
				admin.PUT("/reparaciones/:id/estado", h.Repairs.UpdateRequestStatus)
				admin.DELETE("/reparaciones/:id", h.Repairs.DeleteRequest)
			}
		}
	}
}
