package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse resposta de /health
type HealthResponse struct {
	Status    string    `json:"status" example:"OK"`
	Timestamp time.Time `json:"timestamp"`
}

// Health verificação de saúde
// @Summary Saúde do serviço
// @Tags Sistema
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "OK", Timestamp: time.Now().UTC()})
}

// Index descreve a API
// @Summary Descrição da API
// @Tags Sistema
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":       "API de Controle Financeiro Pessoal",
		"documentation": "/api-docs",
		"endpoints": gin.H{
			"auth":       "/api/auth",
			"categorias": "/api/categorias",
			"gastos":     "/api/gastos",
			"receitas":   "/api/receitas",
			"metas":      "/api/metas",
			"relatorios": "/api/relatorios",
		},
	})
}
