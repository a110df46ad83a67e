package api

import (
	"errors"
	"net/http"
	"strconv"

	"controle-financeiro/config"
	"controle-financeiro/middleware"
	"controle-financeiro/models"
	"controle-financeiro/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const expenseNotFound = "Gasto não encontrado"

// errCategoryNotOwned categoria inexistente ou de outro usuário
var errCategoryNotOwned = errors.New("categoria não pertence ao usuário")

// ExpenseHandler gastos do usuário
type ExpenseHandler struct {
	base
}

// NewExpenseHandler cria o handler
func NewExpenseHandler(db *gorm.DB, cfg *config.Config) *ExpenseHandler {
	return &ExpenseHandler{base{db: db, cfg: cfg}}
}

// Create registra um gasto
// @Summary Criar gasto
// @Description A categoria precisa pertencer ao usuário
// @Tags Gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.ExpenseInput true "Gasto"
// @Success 201 {object} models.Expense
// @Failure 400 {object} ErrorResponse "Campos obrigatórios, valor ou data inválidos"
// @Failure 404 {object} ErrorResponse "Categoria não encontrada"
// @Router /api/gastos [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var in validation.ExpenseInput
	if !bindJSON(c, &in, "Todos os campos são obrigatórios") {
		return
	}
	expense, err := validation.Expense(in)
	if err != nil {
		h.respondError(c, err, expenseNotFound)
		return
	}
	userID := middleware.GetCurrentUserID(c)

	if err := h.checkCategory(*expense.CategoryID, userID); err != nil {
		h.respondCategoryError(c, err)
		return
	}

	expense.UserID = userID
	if err := h.db.Create(&expense).Error; err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// List lista os gastos com filtros opcionais
// @Summary Listar gastos
// @Description Inclui categoria_nome e categoria_cor; ordenado por data decrescente
// @Tags Gastos
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Data inicial (YYYY-MM-DD)"
// @Param endDate query string false "Data final (YYYY-MM-DD)"
// @Param categoria query int false "ID da categoria"
// @Success 200 {array} models.ExpenseDetail
// @Failure 400 {object} ErrorResponse "Data inválida"
// @Router /api/gastos [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	q, ok := h.filtered(c)
	if !ok {
		return
	}
	if categoria := c.Query("categoria"); categoria != "" {
		id, err := strconv.ParseUint(categoria, 10, 32)
		if err != nil {
			BadRequest(c, "Categoria inválida")
			return
		}
		q = q.Where("g.categoria_id = ?", uint(id))
	}

	list := make([]models.ExpenseDetail, 0)
	if err := q.Order("g.data DESC").Find(&list).Error; err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get busca um gasto
// @Summary Buscar gasto
// @Tags Gastos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do gasto"
// @Success 200 {object} models.ExpenseDetail
// @Failure 404 {object} MessageResponse "Gasto não encontrado"
// @Router /api/gastos/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		NotFound(c, expenseNotFound)
		return
	}
	var detail models.ExpenseDetail
	err := models.ExpensesWithCategory(h.db).
		Where("g.id = ? AND g.usuario_id = ?", id, middleware.GetCurrentUserID(c)).
		Take(&detail).Error
	if err != nil {
		h.respondError(c, err, expenseNotFound)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Update substitui os campos de um gasto do usuário
// @Summary Atualizar gasto
// @Tags Gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do gasto"
// @Param request body validation.ExpenseInput true "Gasto"
// @Success 200 {object} models.Expense
// @Failure 400 {object} ErrorResponse "Campos obrigatórios, valor ou data inválidos"
// @Failure 404 {object} map[string]interface{} "Gasto ou categoria não encontrados"
// @Router /api/gastos/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	var in validation.ExpenseInput
	if !bindJSON(c, &in, "Todos os campos são obrigatórios") {
		return
	}
	input, err := validation.Expense(in)
	if err != nil {
		h.respondError(c, err, expenseNotFound)
		return
	}
	userID := middleware.GetCurrentUserID(c)

	id, ok := pathID(c)
	if !ok {
		NotFound(c, expenseNotFound)
		return
	}
	var expense models.Expense
	if err := h.db.Where("id = ? AND usuario_id = ?", id, userID).First(&expense).Error; err != nil {
		h.respondError(c, err, expenseNotFound)
		return
	}

	if err := h.checkCategory(*input.CategoryID, userID); err != nil {
		h.respondCategoryError(c, err)
		return
	}

	err = h.db.Model(&models.Expense{}).
		Where("id = ? AND usuario_id = ?", expense.ID, userID).
		Updates(map[string]interface{}{
			"descricao":    input.Description,
			"valor":        input.Amount,
			"data":         input.Date,
			"categoria_id": *input.CategoryID,
			"pago":         input.Paid,
		}).Error
	if err != nil {
		h.InternalError(c, err)
		return
	}

	input.ID = expense.ID
	input.UserID = userID
	c.JSON(http.StatusOK, input)
}

// Delete remove um gasto
// @Summary Excluir gasto
// @Tags Gastos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do gasto"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse "Gasto não encontrado"
// @Router /api/gastos/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		NotFound(c, expenseNotFound)
		return
	}
	res := h.db.Where("id = ? AND usuario_id = ?", id, middleware.GetCurrentUserID(c)).Delete(&models.Expense{})
	if res.Error != nil {
		h.InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, expenseNotFound)
		return
	}
	Message(c, "Gasto deletado com sucesso")
}

// filtered consulta base dos gastos do usuário com startDate/endDate
func (h *ExpenseHandler) filtered(c *gin.Context) (*gorm.DB, bool) {
	q := models.ExpensesWithCategory(h.db).Where("g.usuario_id = ?", middleware.GetCurrentUserID(c))
	if s := c.Query("startDate"); s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			BadRequest(c, "Data inválida")
			return nil, false
		}
		q = q.Where("g.data >= ?", d)
	}
	if s := c.Query("endDate"); s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			BadRequest(c, "Data inválida")
			return nil, false
		}
		q = q.Where("g.data <= ?", d)
	}
	return q, true
}

// checkCategory a categoria precisa existir e ser do usuário
func (h *ExpenseHandler) checkCategory(categoryID, userID uint) error {
	var cat models.Category
	err := h.db.Select("id").Where("id = ? AND usuario_id = ?", categoryID, userID).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errCategoryNotOwned
	}
	return err
}

func (h *ExpenseHandler) respondCategoryError(c *gin.Context, err error) {
	if errors.Is(err, errCategoryNotOwned) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: categoryNotFound})
		return
	}
	h.InternalError(c, err)
}
