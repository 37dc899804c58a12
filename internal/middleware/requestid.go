package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/lyralearn/workshop-backend/internal/platform/requestid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID, keeping a caller-provided
// one when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = requestid.New()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
