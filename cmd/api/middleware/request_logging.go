package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"editorial-cms/logger"
	"editorial-cms/trace"
)

// ErrorLogging 은 핸들러가 c.Error 로 남긴 에러를 요청 단위로 기록한다.
// 5xx 는 error, 나머지는 warn 레벨.
func ErrorLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		status := c.Writer.Status()
		fields := logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"errors":     c.Errors.Errors(),
		}
		if status >= http.StatusInternalServerError {
			logger.ErrorWithFields("request failed", fields)
			return
		}
		logger.WarnWithFields("request rejected", fields)
	}
}
