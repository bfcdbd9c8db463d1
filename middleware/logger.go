package middleware

import (
	"time"

	"holidayapi/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one line per request to the application log file.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		utils.LogInfo("%s %s -> %d (%s)",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
