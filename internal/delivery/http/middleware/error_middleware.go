package middleware

import (
	"errors"
	"net/http"

	"scoutline-backend/internal/delivery/http/response"
	"scoutline-backend/pkg/apperror"
	"scoutline-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors pushed via c.Error into the response
// envelope. Unknown errors are logged server-side and surface as a
// generic 500 so no internal detail leaks to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("Unhandled request error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
