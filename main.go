package main

import (
	"log"

	"github.com/LigeronAhill/nextjs-dashboard/config"
	"github.com/LigeronAhill/nextjs-dashboard/jobs"
	"github.com/LigeronAhill/nextjs-dashboard/routes"
	"github.com/LigeronAhill/nextjs-dashboard/services"
	"github.com/LigeronAhill/nextjs-dashboard/services/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	router, db, redisCli, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	dashboardService := services.NewDashboardService(services.DashboardServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetDashboardCacheWarmer(services.NewDashboardCacheAdapter(dashboardService, redisCli))

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, db, redisCli)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	port := config.GetEnvDefault("PORT", "8083")

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
