package api

import (
	"errors"
	"net/http"

	"controle-financeiro/auth"
	"controle-financeiro/config"
	"controle-financeiro/middleware"
	"controle-financeiro/models"
	"controle-financeiro/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler cadastro, login e verificação de token
type AuthHandler struct {
	base
	tokens *auth.TokenManager
}

// NewAuthHandler cria o handler
func NewAuthHandler(db *gorm.DB, cfg *config.Config, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{base: base{db: db, cfg: cfg}, tokens: tokens}
}

// AuthResponse resposta de cadastro e login
type AuthResponse struct {
	Auth  bool               `json:"auth" example:"true"`
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

// VerifyResponse resposta de /verify
type VerifyResponse struct {
	Auth   bool `json:"auth" example:"true"`
	UserID uint `json:"userId" example:"1"`
}

// Register cadastra um usuário
// @Summary Cadastrar usuário
// @Description Cria a conta e devolve um token válido por 7 dias
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param request body validation.RegisterInput true "Dados do usuário"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse "Campos obrigatórios, senha curta ou email inválido"
// @Failure 409 {object} ErrorResponse "Email já cadastrado"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var in validation.RegisterInput
	if !bindJSON(c, &in, "Todos os campos são obrigatórios") {
		return
	}
	reg, err := validation.Register(in)
	if err != nil {
		h.respondError(c, err, "")
		return
	}

	var existing models.User
	err = h.db.Where("email = ?", reg.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Email já cadastrado"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.InternalError(c, err)
		return
	}

	hashed, err := auth.HashPassword(reg.Password)
	if err != nil {
		h.InternalError(c, err)
		return
	}

	user := models.User{Name: reg.Name, Email: reg.Email, Password: hashed}
	if err := h.db.Create(&user).Error; err != nil {
		// cadastro concorrente com o mesmo email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email já cadastrado"})
			return
		}
		h.InternalError(c, err)
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, AuthResponse{Auth: true, Token: token, User: user.Summary()})
}

// Login autentica por email e senha
// @Summary Login
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param request body validation.LoginInput true "Credenciais"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse "Email e senha são obrigatórios"
// @Failure 401 {object} map[string]interface{} "Credenciais inválidas"
// @Failure 404 {object} ErrorResponse "Usuário não encontrado"
// @Failure 429 {object} ErrorResponse "Muitas tentativas"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var in validation.LoginInput
	if !bindJSON(c, &in, "Email e senha são obrigatórios") {
		return
	}
	creds, err := validation.Login(in)
	if err != nil {
		h.respondError(c, err, "")
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", creds.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Usuário não encontrado"})
			return
		}
		h.InternalError(c, err)
		return
	}

	if err := auth.CheckPassword(user.Password, creds.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"auth": false, "error": "Credenciais inválidas"})
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, AuthResponse{Auth: true, Token: token, User: user.Summary()})
}

// Verify confirma que o token é válido
// @Summary Verificar token
// @Tags Autenticação
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} map[string]interface{} "Token não fornecido"
// @Failure 403 {object} map[string]interface{} "Token inválido ou expirado"
// @Router /api/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, VerifyResponse{Auth: true, UserID: middleware.GetCurrentUserID(c)})
}
