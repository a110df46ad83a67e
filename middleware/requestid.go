package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader cabeçalho de correlação
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID reaproveita o X-Request-ID do cliente ou gera um UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID id da requisição atual
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
