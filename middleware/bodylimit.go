package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit limita o tamanho do corpo; Content-Length acima do limite responde 413,
// corpos sem Content-Length falham na leitura e caem na validação.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Corpo da requisição muito grande"})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
