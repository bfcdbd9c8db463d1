package main

import (
	"log"
	"net/http"
	"os"

	"holidayapi/config"
	"holidayapi/jobs"
	"holidayapi/repository"
	"holidayapi/routes"
	"holidayapi/services"
	"holidayapi/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Federal Holidays API
// @version 1.0
// @description API for managing federal holidays of countries
// @BasePath /api/v1
func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	holidayService := services.NewHolidayService(services.HolidayServiceOptions{
		Store:  repository.NewGormStore(config.DB),
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetCacheRefresher(services.NewCacheWarmer(holidayService, config.RedisClient))

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
