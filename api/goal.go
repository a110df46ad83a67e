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

const goalNotFound = "Meta não encontrada"

// GoalHandler metas de economia
type GoalHandler struct {
	base
}

// NewGoalHandler cria o handler
func NewGoalHandler(db *gorm.DB, cfg *config.Config) *GoalHandler {
	return &GoalHandler{base{db: db, cfg: cfg}}
}

// Create cria uma meta
// @Summary Criar meta
// @Tags Metas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.GoalInput true "Meta"
// @Success 201 {object} models.Goal
// @Failure 400 {object} ErrorResponse "Descrição e valor objetivo são obrigatórios"
// @Router /api/metas [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var in validation.GoalInput
	if !bindJSON(c, &in, "Descrição e valor objetivo são obrigatórios") {
		return
	}
	goal, err := validation.Goal(in)
	if err != nil {
		h.respondError(c, err, goalNotFound)
		return
	}
	goal.UserID = middleware.GetCurrentUserID(c)

	if err := h.db.Create(&goal).Error; err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// List metas por prazo; sem prazo primeiro
// @Summary Listar metas
// @Tags Metas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Goal
// @Router /api/metas [get]
func (h *GoalHandler) List(c *gin.Context) {
	list := make([]models.Goal, 0)
	err := h.db.Where("usuario_id = ?", middleware.GetCurrentUserID(c)).
		Order("data_limite ASC").
		Find(&list).Error
	if err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get busca uma meta
// @Summary Buscar meta
// @Tags Metas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da meta"
// @Success 200 {object} models.Goal
// @Failure 404 {object} MessageResponse "Meta não encontrada"
// @Router /api/metas/{id} [get]
func (h *GoalHandler) Get(c *gin.Context) {
	goal, err := h.find(c)
	if err != nil {
		h.respondError(c, err, goalNotFound)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Update substitui os campos da meta
// @Summary Atualizar meta
// @Tags Metas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da meta"
// @Param request body validation.GoalInput true "Meta"
// @Success 200 {object} models.Goal
// @Failure 400 {object} ErrorResponse "Descrição e valor objetivo são obrigatórios"
// @Failure 404 {object} MessageResponse "Meta não encontrada"
// @Router /api/metas/{id} [put]
func (h *GoalHandler) Update(c *gin.Context) {
	var in validation.GoalInput
	if !bindJSON(c, &in, "Descrição e valor objetivo são obrigatórios") {
		return
	}
	input, err := validation.Goal(in)
	if err != nil {
		h.respondError(c, err, goalNotFound)
		return
	}

	goal, err := h.find(c)
	if err != nil {
		h.respondError(c, err, goalNotFound)
		return
	}

	err = h.db.Model(&models.Goal{}).
		Where("id = ? AND usuario_id = ?", goal.ID, goal.UserID).
		Updates(map[string]interface{}{
			"descricao":      input.Description,
			"valor_objetivo": input.TargetAmount,
			"valor_atual":    input.CurrentAmount,
			"data_limite":    input.Deadline,
		}).Error
	if err != nil {
		h.InternalError(c, err)
		return
	}

	input.ID = goal.ID
	input.UserID = goal.UserID
	c.JSON(http.StatusOK, input)
}

// Add soma um valor ao valor atual da meta
// @Summary Adicionar valor à meta
// @Description Incremento atômico de valor_atual; chamadas sucessivas acumulam
// @Tags Metas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da meta"
// @Param request body validation.GoalDepositInput true "Valor"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Valor inválido ou acima do limite"
// @Failure 404 {object} MessageResponse "Meta não encontrada"
// @Router /api/metas/{id}/add [patch]
func (h *GoalHandler) Add(c *gin.Context) {
	var in validation.GoalDepositInput
	if !bindJSON(c, &in, "Valor inválido") {
		return
	}
	amount, err := validation.GoalDeposit(in)
	if err != nil {
		h.respondError(c, err, goalNotFound)
		return
	}

	goal, err := h.find(c)
	if err != nil {
		h.respondError(c, err, goalNotFound)
		return
	}
	if _, err := validation.GoalBalance(goal.CurrentAmount, amount); err != nil {
		h.respondError(c, err, goalNotFound)
		return
	}

	err = h.db.Model(&models.Goal{}).
		Where("id = ? AND usuario_id = ?", goal.ID, goal.UserID).
		Update("valor_atual", gorm.Expr("valor_atual + ?", amount)).Error
	if err != nil {
		h.InternalError(c, err)
		return
	}
	Message(c, "Valor adicionado com sucesso")
}

// Delete remove a meta
// @Summary Excluir meta
// @Tags Metas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da meta"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse "Meta não encontrada"
// @Router /api/metas/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		NotFound(c, goalNotFound)
		return
	}
	res := h.db.Where("id = ? AND usuario_id = ?", id, middleware.GetCurrentUserID(c)).Delete(&models.Goal{})
	if res.Error != nil {
		h.InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, goalNotFound)
		return
	}
	Message(c, "Meta deletada com sucesso")
}

func (h *GoalHandler) find(c *gin.Context) (models.Goal, error) {
	var goal models.Goal
	id, ok := pathID(c)
	if !ok {
		return goal, gorm.ErrRecordNotFound
	}
	err := h.db.Where("id = ? AND usuario_id = ?", id, middleware.GetCurrentUserID(c)).First(&goal).Error
	return goal, err
}
