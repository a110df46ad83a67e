package api

import (
	"net/http"

	"controle-financeiro/config"
	"controle-financeiro/middleware"
	"controle-financeiro/models"
	"controle-financeiro/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const incomeNotFound = "Receita não encontrada"

// IncomeHandler receitas do usuário
type IncomeHandler struct {
	base
}

// NewIncomeHandler cria o handler
func NewIncomeHandler(db *gorm.DB, cfg *config.Config) *IncomeHandler {
	return &IncomeHandler{base{db: db, cfg: cfg}}
}

// Create registra uma receita
// @Summary Criar receita
// @Tags Receitas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.IncomeInput true "Receita"
// @Success 201 {object} models.Income
// @Failure 400 {object} ErrorResponse "Descrição, valor e data são obrigatórios"
// @Router /api/receitas [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var in validation.IncomeInput
	if !bindJSON(c, &in, "Descrição, valor e data são obrigatórios") {
		return
	}
	income, err := validation.Income(in)
	if err != nil {
		h.respondError(c, err, incomeNotFound)
		return
	}
	income.UserID = middleware.GetCurrentUserID(c)

	if err := h.db.Create(&income).Error; err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, income)
}

// List receitas do usuário, mais recentes primeiro
// @Summary Listar receitas
// @Tags Receitas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Income
// @Router /api/receitas [get]
func (h *IncomeHandler) List(c *gin.Context) {
	list := make([]models.Income, 0)
	err := h.db.Where("usuario_id = ?", middleware.GetCurrentUserID(c)).
		Order("data DESC").
		Find(&list).Error
	if err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get busca uma receita
// @Summary Buscar receita
// @Tags Receitas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da receita"
// @Success 200 {object} models.Income
// @Failure 404 {object} MessageResponse "Receita não encontrada"
// @Router /api/receitas/{id} [get]
func (h *IncomeHandler) Get(c *gin.Context) {
	income, err := h.find(c)
	if err != nil {
		h.respondError(c, err, incomeNotFound)
		return
	}
	c.JSON(http.StatusOK, income)
}

// Update substitui os campos da receita
// @Summary Atualizar receita
// @Tags Receitas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da receita"
// @Param request body validation.IncomeInput true "Receita"
// @Success 200 {object} models.Income
// @Failure 400 {object} ErrorResponse "Descrição, valor e data são obrigatórios"
// @Failure 404 {object} MessageResponse "Receita não encontrada"
// @Router /api/receitas/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	var in validation.IncomeInput
	if !bindJSON(c, &in, "Descrição, valor e data são obrigatórios") {
		return
	}
	input, err := validation.Income(in)
	if err != nil {
		h.respondError(c, err, incomeNotFound)
		return
	}

	income, err := h.find(c)
	if err != nil {
		h.respondError(c, err, incomeNotFound)
		return
	}

	err = h.db.Model(&models.Income{}).
		Where("id = ? AND usuario_id = ?", income.ID, income.UserID).
		Updates(map[string]interface{}{
			"descricao": input.Description,
			"valor":     input.Amount,
			"data":      input.Date,
			"recebido":  input.Received,
		}).Error
	if err != nil {
		h.InternalError(c, err)
		return
	}

	input.ID = income.ID
	input.UserID = income.UserID
	c.JSON(http.StatusOK, input)
}

// Delete remove a receita
// @Summary Excluir receita
// @Tags Receitas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da receita"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse "Receita não encontrada"
// @Router /api/receitas/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		NotFound(c, incomeNotFound)
		return
	}
	res := h.db.Where("id = ? AND usuario_id = ?", id, middleware.GetCurrentUserID(c)).Delete(&models.Income{})
	if res.Error != nil {
		h.InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, incomeNotFound)
		return
	}
	Message(c, "Receita deletada com sucesso")
}

func (h *IncomeHandler) find(c *gin.Context) (models.Income, error) {
	var income models.Income
	id, ok := pathID(c)
	if !ok {
		return income, gorm.ErrRecordNotFound
	}
	err := h.db.Where("id = ? AND usuario_id = ?", id, middleware.GetCurrentUserID(c)).First(&income).Error
	return income, err
}
