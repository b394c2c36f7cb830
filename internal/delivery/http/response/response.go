package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Detail interface{} `json:"detail"`
}

// MessageBody is a bare acknowledgment.
type MessageBody struct {
	Message string `json:"message" example:"Portfolio backend is running"`
}

// Success sends payload as-is
func Success(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// Error sends an error response
func Error(c *gin.Context, code int, detail interface{}) {
	c.AbortWithStatusJSON(code, ErrorBody{Detail: detail})
}
