package config

import (
	"log"

	"holidayapi/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

func InitApp() (*gin.Engine, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))
	router.Use(middleware.RequestLogger())

	router.SetTrustedProxies(nil)

	initComponents()

	c := cron.New()

	return router, c, nil
}

func initComponents() {
	LoadEnv()

	ConnectDB()

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		// The holiday list cache is an optimization; run without it.
		log.Printf("Warning: Redis unavailable, caching disabled: %v", err)
		RedisClient = nil
	}

	log.Println("All components initialized successfully")
}
