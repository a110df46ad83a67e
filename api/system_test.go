package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthAndIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", Health)
	router.GET("/", Index)

	w := doRequest(router, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "OK", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])

	w = doRequest(router, "GET", "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody(t, w)
	assert.Equal(t, "API de Controle Financeiro Pessoal", resp["message"])
	assert.Equal(t, "/api-docs", resp["documentation"])
	endpoints := resp["endpoints"].(map[string]interface{})
	assert.Equal(t, "/api/relatorios", endpoints["relatorios"])
	assert.Len(t, endpoints, 6)
}
