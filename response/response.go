package response

import (
	"net/http"

	apperrors "holidayapi/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// OK writes a 200 with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest writes a 400 with a plain message.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound writes a 404 with a plain message.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Error writes an ErrorResponse with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Message: message,
		Status:  status,
	})
}

// AppError renders a business error with the status its kind maps to.
func AppError(c *gin.Context, err error) {
	Error(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
}
