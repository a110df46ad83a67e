package middleware

import (
	"errors"
	"net/http"

	"controle-financeiro/auth"

	"github.com/gin-gonic/gin"
)

// userIDKey chave do id do usuário no contexto do gin
const userIDKey = "userID"

// JWTAuth exige "Authorization: Bearer <token>" válido.
// Sem token responde 401; token inválido ou expirado responde 403.
func JWTAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := tokens.Verify(auth.BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			status := http.StatusForbidden
			if errors.Is(err, auth.ErrMissingToken) {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, gin.H{
				"auth":    false,
				"message": tokenErrorMessage(err),
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func tokenErrorMessage(err error) string {
	if errors.Is(err, auth.ErrMissingToken) {
		return "Token não fornecido"
	}
	return "Token inválido ou expirado"
}

// GetCurrentUserID id do usuário autenticado (0 quando ausente)
func GetCurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// SetCurrentUserID usado por testes e por handlers que autenticam por conta própria
func SetCurrentUserID(c *gin.Context, userID uint) {
	c.Set(userIDKey, userID)
}
