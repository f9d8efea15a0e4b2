package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/domain"
)

// ErrorHandler translates domain errors pushed onto the gin context into
// HTTP responses. Internal errors are logged with detail server-side and
// returned to the client as an opaque 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, message := errorToHTTP(err)

		if status == http.StatusInternalServerError {
			zap.L().Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			message = "internal server error"
		}

		c.JSON(status, gin.H{"error": message})
	}
}

// errorToHTTP maps domain errors to HTTP status codes
func errorToHTTP(err error) (int, string) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized, err.Error()
	case domain.IsNotFound(err):
		return http.StatusNotFound, err.Error()
	case domain.IsConflict(err):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
