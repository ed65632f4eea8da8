package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/trhieu-dev/tablebooking/controllers"
	"github.com/trhieu-dev/tablebooking/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	rateLimiter := middlewares.NewRateLimiter(100, 60)
	r.Use(rateLimiter.RateLimit())

	userController := controllers.NewUserController(db)
	tableController := controllers.NewTableController(db)
	orderController := controllers.NewOrderController(db)
	menuController := controllers.NewMenuController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Endpoint publik
	public := r.Group("/")
	{
		public.POST("/register", middlewares.NewStrictRateLimiter(), userController.Register)
		public.POST("/login", middlewares.NewStrictRateLimiter(), userController.Login)
		public.GET("/menus", menuController.GetAllMenus)
	}

	// Endpoint yang butuh login
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", userController.Logout)
		auth.GET("/profile", userController.GetProfile)
		auth.PATCH("/profile", userController.UpdateProfile)

		auth.GET("/tables/free", tableController.GetFreeTables)
		auth.GET("/tables", tableController.GetTables)

		auth.POST("/orders", orderController.CreateOrder)
		auth.GET("/orders", orderController.GetAllOrders)
		auth.GET("/orders/:order_id", orderController.GetOrderByID)
		auth.POST("/orders/:order_id/cancel", orderController.CancelOrder)
	}

	// Endpoint khusus admin
	admin := r.Group("/")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.POST("/tables", tableController.CreateTable)
		admin.PATCH("/tables/:table_id/status", tableController.UpdateTableStatus)
		admin.DELETE("/tables/:table_id", tableController.DeleteTable)
		admin.GET("/dashboard/stats", tableController.GetDashboardStats)

		admin.POST("/orders/:order_id/approve", orderController.ApproveOrder)
		admin.POST("/orders/:order_id/decline", orderController.DeclineOrder)
		admin.POST("/orders/:order_id/checkin", orderController.CheckInOrder)
		admin.POST("/orders/:order_id/complete", orderController.CompleteOrder)
	}

	return r
}
