package routes

import (
	"holidayapi/controllers"
	_ "holidayapi/docs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	holidayController := controllers.NewHolidayController(db, redisCli)

	v1 := router.Group("/api/v1")
	v1.GET("/holidays", holidayController.GetHolidays)
	v1.GET("/holidays/country/:code", holidayController.GetHolidaysByCountryCode)
	v1.POST("/holidays", holidayController.AddHoliday)
	v1.PUT("/holidays/:id/:code", holidayController.UpdateHolidayByIDAndCountryCode)
	v1.PUT("/holidays/country/:code/:date", holidayController.UpdateHolidayByCountryCodeAndDate)
	v1.POST("/holidays/import", holidayController.UploadHolidays)
	v1.DELETE("/holidays/country/:code", holidayController.DeleteByCountryCode)
	v1.DELETE("/holidays/country/:code/:date", holidayController.DeleteByCountryCodeAndDate)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
