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

const categoryNotFound = "Categoria não encontrada"

// CategoryHandler categorias do usuário
type CategoryHandler struct {
	base
}

// NewCategoryHandler cria o handler
func NewCategoryHandler(db *gorm.DB, cfg *config.Config) *CategoryHandler {
	return &CategoryHandler{base{db: db, cfg: cfg}}
}

// Create cria uma categoria
// @Summary Criar categoria
// @Tags Categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.CategoryInput true "Categoria"
// @Success 201 {object} models.Category
// @Failure 400 {object} ErrorResponse "Nome é obrigatório"
// @Router /api/categorias [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var in validation.CategoryInput
	if !bindJSON(c, &in, "Nome é obrigatório") {
		return
	}
	cat, err := validation.Category(in)
	if err != nil {
		h.respondError(c, err, categoryNotFound)
		return
	}
	cat.UserID = middleware.GetCurrentUserID(c)

	if err := h.db.Create(&cat).Error; err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// List lista as categorias do usuário por nome
// @Summary Listar categorias
// @Tags Categorias
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Category
// @Router /api/categorias [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list := make([]models.Category, 0)
	err := h.db.Where("usuario_id = ?", middleware.GetCurrentUserID(c)).
		Order("nome").
		Find(&list).Error
	if err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get busca uma categoria
// @Summary Buscar categoria
// @Tags Categorias
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da categoria"
// @Success 200 {object} models.Category
// @Failure 404 {object} MessageResponse "Categoria não encontrada"
// @Router /api/categorias/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.find(c)
	if err != nil {
		h.respondError(c, err, categoryNotFound)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Update altera nome, ícone e cor
// @Summary Atualizar categoria
// @Tags Categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da categoria"
// @Param request body validation.CategoryInput true "Categoria"
// @Success 200 {object} models.Category
// @Failure 400 {object} ErrorResponse "Nome é obrigatório"
// @Failure 404 {object} MessageResponse "Categoria não encontrada"
// @Router /api/categorias/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	var in validation.CategoryInput
	if !bindJSON(c, &in, "Nome é obrigatório") {
		return
	}
	input, err := validation.Category(in)
	if err != nil {
		h.respondError(c, err, categoryNotFound)
		return
	}

	cat, err := h.find(c)
	if err != nil {
		h.respondError(c, err, categoryNotFound)
		return
	}

	// Select grava também ícone e cor nulos
	err = h.db.Model(&cat).
		Select("nome", "icone", "cor").
		Updates(models.Category{Name: input.Name, Icon: input.Icon, Color: input.Color}).Error
	if err != nil {
		h.InternalError(c, err)
		return
	}
	cat.Name, cat.Icon, cat.Color = input.Name, input.Icon, input.Color
	c.JSON(http.StatusOK, cat)
}

// Delete remove a categoria; gastos ligados a ela ficam sem categoria
// @Summary Excluir categoria
// @Tags Categorias
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da categoria"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse "Categoria não encontrada"
// @Router /api/categorias/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		NotFound(c, categoryNotFound)
		return
	}
	res := h.db.Where("id = ? AND usuario_id = ?", id, middleware.GetCurrentUserID(c)).Delete(&models.Category{})
	if res.Error != nil {
		h.InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, categoryNotFound)
		return
	}
	Message(c, "Categoria deletada com sucesso")
}

// find categoria do usuário atual pelo :id
func (h *CategoryHandler) find(c *gin.Context) (models.Category, error) {
	var cat models.Category
	id, ok := pathID(c)
	if !ok {
		return cat, gorm.ErrRecordNotFound
	}
	err := h.db.Where("id = ? AND usuario_id = ?", id, middleware.GetCurrentUserID(c)).First(&cat).Error
	return cat, err
}
