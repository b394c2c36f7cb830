package middleware

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Detail != nil {
				response.Error(c, appErr.Code, appErr.Detail)
				return
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Unknown errors are logged, not echoed
		logger.Log.Error("unhandled request error",
			zap.Error(err),
			zap.String("request_id", c.GetString(RequestIDKey)),
		)
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
