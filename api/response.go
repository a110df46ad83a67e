package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"controle-financeiro/config"
	"controle-financeiro/middleware"
	"controle-financeiro/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// internalErrorMessage mensagem genérica de erro 500
const internalErrorMessage = "Erro interno do servidor"

// ErrorResponse corpo de erro
type ErrorResponse struct {
	Error string `json:"error" example:"Todos os campos são obrigatórios"`
}

// MessageResponse corpo com mensagem simples
type MessageResponse struct {
	Message string `json:"message" example:"Gasto deletado com sucesso"`
}

// base dependências comuns dos handlers
type base struct {
	db  *gorm.DB
	cfg *config.Config
}

// BadRequest 400 {error}
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// NotFound 404 {message}
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, MessageResponse{Message: message})
}

// Message 200 {message}
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// InternalError registra o erro e responde 500; em release esconde os detalhes
func (b base) InternalError(c *gin.Context, err error) {
	slog.Error("falha ao processar requisição",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", middleware.GetRequestID(c),
		"error", err,
	)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: b.cfg.SafeErrorMessage(err, internalErrorMessage)})
}

// respondError traduz erros de validação e do banco para o status HTTP.
// notFound é a mensagem usada quando o registro não existe.
func (b base) respondError(c *gin.Context, err error, notFound string) {
	if verr, ok := validation.AsError(err); ok {
		BadRequest(c, verr.Message)
		return
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, notFound)
	default:
		b.InternalError(c, err)
	}
}

// pathID lê :id; valores inválidos nunca pertencem ao usuário
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// bindJSON lê o corpo; JSON malformado vira 400 com a mensagem do recurso
func bindJSON(c *gin.Context, dst any, invalid string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		BadRequest(c, invalid)
		return false
	}
	return true
}
