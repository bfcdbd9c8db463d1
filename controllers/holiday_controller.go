package controllers

import (
	"fmt"
	"strconv"

	"holidayapi/constants"
	"holidayapi/dto"
	"holidayapi/repository"
	"holidayapi/response"
	"holidayapi/services"
	"holidayapi/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HolidayController exposes the holiday CRUD and bulk import endpoints.
type HolidayController struct {
	service       *services.HolidayService
	importService *services.ImportService
	redis         *redis.Client
	logger        logger.Logger
}

func NewHolidayController(db *gorm.DB, redisCli *redis.Client) *HolidayController {
	lg := logger.NewDefaultLogger(logger.InfoLevel)
	holidayService := services.NewHolidayService(services.HolidayServiceOptions{
		Store:  repository.NewGormStore(db),
		Logger: lg,
	})
	return &HolidayController{
		service:       holidayService,
		importService: services.NewImportService(holidayService, lg),
		redis:         redisCli,
		logger:        lg,
	}
}

// GetHolidays godoc
// @Summary List all federal holidays
// @Tags holidays
// @Produce json
// @Success 200 {array} dto.HolidayResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /holidays [get]
func (hc *HolidayController) GetHolidays(c *gin.Context) {
	var holidays []dto.HolidayResponse
	if hc.redis != nil {
		if err := services.GetFromRedis(c.Request.Context(), hc.redis, constants.HolidayCacheKey, &holidays); err != nil {
			hc.logger.Error("holiday cache read: %v", err)
		}
	}

	if len(holidays) == 0 {
		var err error
		holidays, err = hc.service.GetAllHolidays()
		if err != nil {
			response.AppError(c, err)
			return
		}
		if len(holidays) == 0 {
			response.NotFound(c, "No holidays found.")
			return
		}
		if hc.redis != nil {
			if err := services.SetToRedis(c.Request.Context(), hc.redis, constants.HolidayCacheKey, holidays, constants.HolidayCacheTTL); err != nil {
				hc.logger.Error("holiday cache write: %v", err)
			}
		}
	}

	response.OK(c, holidays)
}

// GetHolidaysByCountryCode godoc
// @Summary List holidays for one country
// @Tags holidays
// @Produce json
// @Param code path string true "Country code"
// @Success 200 {array} dto.HolidayResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /holidays/country/{code} [get]
func (hc *HolidayController) GetHolidaysByCountryCode(c *gin.Context) {
	holidays, err := hc.service.GetHolidaysByCountryCode(c.Param("code"))
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.OK(c, holidays)
}

// AddHoliday godoc
// @Summary Add a new federal holiday
// @Tags holidays
// @Accept json
// @Produce json
// @Param request body dto.HolidayRequest true "Holiday details"
// @Success 201 {object} dto.HolidayResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /holidays [post]
func (hc *HolidayController) AddHoliday(c *gin.Context) {
	var request dto.HolidayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	holiday, err := hc.service.AddHoliday(request)
	if err != nil {
		response.AppError(c, err)
		return
	}

	hc.invalidateCache(c)
	response.Created(c, holiday)
}

// UpdateHolidayByIDAndCountryCode godoc
// @Summary Update a holiday by id and country code
// @Tags holidays
// @Accept json
// @Produce json
// @Param id path int true "Holiday id"
// @Param code path string true "Country code"
// @Param request body dto.HolidayRequest true "Updated holiday details"
// @Success 200 {object} dto.HolidayResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /holidays/{id}/{code} [put]
func (hc *HolidayController) UpdateHolidayByIDAndCountryCode(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid holiday ID: "+c.Param("id"))
		return
	}

	var request dto.HolidayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	holiday, err := hc.service.UpdateHolidayByIDAndCountryCode(uint(id), c.Param("code"), request)
	if err != nil {
		response.AppError(c, err)
		return
	}

	hc.invalidateCache(c)
	response.OK(c, holiday)
}

// UpdateHolidayByCountryCodeAndDate godoc
// @Summary Update a holiday by country code and date
// @Tags holidays
// @Accept json
// @Produce json
// @Param code path string true "Country code"
// @Param date path string true "Holiday date (YYYY-MM-DD)"
// @Param request body dto.HolidayRequest true "Updated holiday details"
// @Success 200 {object} dto.HolidayResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /holidays/country/{code}/{date} [put]
func (hc *HolidayController) UpdateHolidayByCountryCodeAndDate(c *gin.Context) {
	var request dto.HolidayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	holiday, err := hc.service.UpdateHolidayByCountryCodeAndDate(c.Param("code"), c.Param("date"), request)
	if err != nil {
		response.AppError(c, err)
		return
	}

	hc.invalidateCache(c)
	response.OK(c, holiday)
}

// UploadHolidays godoc
// @Summary Import holidays from CSV or Excel files
// @Tags holidays
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "CSV or XLSX files"
// @Success 200 {object} dto.FileUploadResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /holidays/import [post]
func (hc *HolidayController) UploadHolidays(c *gin.Context) {
	var files []services.ImportFile

	// A missing multipart body counts as zero files, not as an error.
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, header := range form.File["files"] {
			src, err := header.Open()
			if err != nil {
				response.Error(c, 500, "Failed to process the file: "+err.Error())
				return
			}
			defer src.Close()
			files = append(files, services.ImportFile{Name: header.Filename, Reader: src})
		}
	}

	report, err := hc.importService.UploadHolidays(files)
	if err != nil {
		response.AppError(c, err)
		return
	}

	hc.invalidateCache(c)
	response.OK(c, report)
}

// DeleteByCountryCode godoc
// @Summary Delete all holidays for a country
// @Tags holidays
// @Produce json
// @Param code path string true "Country code"
// @Success 200 {object} dto.DeleteHolidayResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /holidays/country/{code} [delete]
func (hc *HolidayController) DeleteByCountryCode(c *gin.Context) {
	code := c.Param("code")
	deleted, err := hc.service.DeleteByCountryCode(code)
	if err != nil {
		response.AppError(c, err)
		return
	}

	hc.invalidateCache(c)
	response.OK(c, dto.DeleteHolidayResponse{
		DeletedRecords: deleted,
		Message:        fmt.Sprintf("%d records deleted for country code %s", deleted, code),
	})
}

// DeleteByCountryCodeAndDate godoc
// @Summary Delete a holiday by country code and date
// @Tags holidays
// @Produce json
// @Param code path string true "Country code"
// @Param date path string true "Holiday date (YYYY-MM-DD)"
// @Success 200 {object} dto.DeleteHolidayResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /holidays/country/{code}/{date} [delete]
func (hc *HolidayController) DeleteByCountryCodeAndDate(c *gin.Context) {
	code := c.Param("code")
	date := c.Param("date")
	deleted, err := hc.service.DeleteByCountryCodeAndDate(code, date)
	if err != nil {
		response.AppError(c, err)
		return
	}

	hc.invalidateCache(c)
	response.OK(c, dto.DeleteHolidayResponse{
		DeletedRecords: deleted,
		Message:        fmt.Sprintf("%d records deleted for country code %s and date %s", deleted, code, date),
	})
}

func (hc *HolidayController) invalidateCache(c *gin.Context) {
	if hc.redis == nil {
		return
	}
	if err := services.DeleteFromRedis(c.Request.Context(), hc.redis, constants.HolidayCacheKey); err != nil {
		hc.logger.Error("holiday cache invalidate: %v", err)
	}
}
