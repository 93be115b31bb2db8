package config

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func InitApp() (*gin.Engine, *gorm.DB, *redis.Client, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	LoadEnv()

	db := ConnectDB()

	redisClient, err := ConnectRedis()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	c := cron.New()

	log.Println("All components initialized successfully")
	return router, db, redisClient, c, nil
}
