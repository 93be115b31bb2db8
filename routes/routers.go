package routes

import (
	"github.com/LigeronAhill/nextjs-dashboard/controllers"
	middlewares "github.com/LigeronAhill/nextjs-dashboard/middleware"
	"github.com/LigeronAhill/nextjs-dashboard/services"
	"github.com/LigeronAhill/nextjs-dashboard/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	userService := services.NewUserService(services.UserServiceOptions{
		DB:     db,
		Logger: appLogger,
	})
	authService := services.NewAuthService(services.AuthServiceOptions{
		Store:  userService,
		Logger: appLogger,
	})
	dashboardService := services.NewDashboardService(services.DashboardServiceOptions{
		DB:     db,
		Logger: appLogger,
	})
	seedService := services.NewSeedService(services.SeedServiceOptions{
		DB:     db,
		Logger: appLogger,
	})

	authController := controllers.NewAuthController(authService)
	seedController := controllers.NewSeedController(seedService, redisCli)
	invoiceController := controllers.NewInvoiceController(dashboardService)
	customerController := controllers.NewCustomerController(dashboardService)
	dashboardController := controllers.NewDashboardController(dashboardService, redisCli)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.DELETE("/auth/logout", authController.Logout)

	v1.GET("/seed", seedController.Seed)

	v1.GET("/dashboard/cards", middlewares.AuthMiddleware(), dashboardController.GetCards)
	v1.GET("/dashboard/revenue", middlewares.AuthMiddleware(), dashboardController.GetRevenue)

	v1.GET("/invoices", middlewares.AuthMiddleware(), invoiceController.GetInvoices)
	v1.GET("/invoices/latest", middlewares.AuthMiddleware(), invoiceController.GetLatestInvoices)
	v1.GET("/invoices/:id", middlewares.AuthMiddleware(), invoiceController.GetDetailInvoice)

	v1.GET("/customers", middlewares.AuthMiddleware(), customerController.GetCustomers)
	v1.GET("/customers/filtered", middlewares.AuthMiddleware(), customerController.GetFilteredCustomers)
}
