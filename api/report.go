package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"controle-financeiro/config"
	"controle-financeiro/middleware"
	"controle-financeiro/models"
	"controle-financeiro/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportHandler relatórios
type ReportHandler struct {
	base
	reports *service.ReportService
	mailer  *service.EmailService
}

// NewReportHandler cria o handler; mailer pode ser nil
func NewReportHandler(db *gorm.DB, cfg *config.Config, mailer *service.EmailService) *ReportHandler {
	return &ReportHandler{
		base:    base{db: db, cfg: cfg},
		reports: service.NewReportService(db),
		mailer:  mailer,
	}
}

// Monthly relatório mensal por categoria
// @Summary Relatório mensal
// @Description Gastos por categoria (maior total primeiro), receitas recebidas e saldo do mês
// @Tags Relatórios
// @Produce json
// @Security BearerAuth
// @Param ano query int true "Ano" example(2024)
// @Param mes query int true "Mês (1-12)" example(1)
// @Success 200 {object} service.MonthlyReport
// @Failure 400 {object} ErrorResponse "Ano e mês são obrigatórios"
// @Router /api/relatorios/mensal [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	report, ok := h.monthly(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

// MonthlyChart gráfico de pizza do mês
// @Summary Gráfico mensal
// @Tags Relatórios
// @Produce png
// @Security BearerAuth
// @Param ano query int true "Ano"
// @Param mes query int true "Mês (1-12)"
// @Success 200 {file} file "PNG"
// @Failure 400 {object} ErrorResponse "Ano e mês são obrigatórios"
// @Failure 404 {object} MessageResponse "Nenhum gasto no período"
// @Router /api/relatorios/mensal/grafico [get]
func (h *ReportHandler) MonthlyChart(c *gin.Context) {
	report, ok := h.monthly(c)
	if !ok {
		return
	}
	png, err := service.MonthlyPieChart(report)
	if err != nil {
		if errors.Is(err, service.ErrNoChartData) {
			NotFound(c, "Nenhum gasto no período")
			return
		}
		h.InternalError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// SendMonthly envia o relatório mensal para o email do usuário
// @Summary Enviar relatório mensal por e-mail
// @Tags Relatórios
// @Produce json
// @Security BearerAuth
// @Param ano query int true "Ano"
// @Param mes query int true "Mês (1-12)"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Ano e mês são obrigatórios"
// @Failure 503 {object} ErrorResponse "Envio de e-mail desativado"
// @Router /api/relatorios/mensal/enviar [post]
func (h *ReportHandler) SendMonthly(c *gin.Context) {
	if !h.mailer.Enabled() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Envio de e-mail desativado"})
		return
	}
	report, ok := h.monthly(c)
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, middleware.GetCurrentUserID(c)).Error; err != nil {
		h.respondError(c, err, "Usuário não encontrado")
		return
	}

	png, err := service.MonthlyPieChart(report)
	if err != nil && !errors.Is(err, service.ErrNoChartData) {
		h.InternalError(c, err)
		return
	}
	if err := h.mailer.SendMonthlyReport(user.Email, user.Name, report, png); err != nil {
		h.InternalError(c, err)
		return
	}
	Message(c, "Relatório enviado para "+user.Email)
}

// Period totais mês a mês
// @Summary Relatório por período
// @Tags Relatórios
// @Produce json
// @Security BearerAuth
// @Param inicio query string true "Data inicial (YYYY-MM-DD)"
// @Param fim query string true "Data final (YYYY-MM-DD)"
// @Success 200 {object} service.PeriodReport
// @Failure 400 {object} ErrorResponse "Data inicial e final são obrigatórias"
// @Router /api/relatorios/periodo [get]
func (h *ReportHandler) Period(c *gin.Context) {
	startStr, endStr := c.Query("inicio"), c.Query("fim")
	if startStr == "" || endStr == "" {
		BadRequest(c, "Data inicial e final são obrigatórias")
		return
	}
	start, err := models.ParseDate(startStr)
	if err != nil {
		BadRequest(c, "Data inválida")
		return
	}
	end, err := models.ParseDate(endStr)
	if err != nil {
		BadRequest(c, "Data inválida")
		return
	}

	report, err := h.reports.Period(c.Request.Context(), middleware.GetCurrentUserID(c), start, end)
	if err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Dashboard resumo do mês corrente
// @Summary Dashboard
// @Tags Relatórios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Dashboard
// @Router /api/relatorios/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.reports.Dashboard(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// monthly lê ano/mes e monta o relatório; responde o erro quando falha
func (h *ReportHandler) monthly(c *gin.Context) (*service.MonthlyReport, bool) {
	yearStr, monthStr := c.Query("ano"), c.Query("mes")
	if yearStr == "" || monthStr == "" {
		BadRequest(c, "Ano e mês são obrigatórios")
		return nil, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 || year > 9999 {
		BadRequest(c, "Ano inválido")
		return nil, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		BadRequest(c, "Mês inválido")
		return nil, false
	}

	report, err := h.reports.Monthly(c.Request.Context(), middleware.GetCurrentUserID(c), year, time.Month(month))
	if err != nil {
		h.InternalError(c, err)
		return nil, false
	}
	return report, true
}
