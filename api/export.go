package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"controle-financeiro/config"
	"controle-financeiro/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler exportação de gastos
type ExportHandler struct {
	expenses *ExpenseHandler
}

// NewExportHandler cria o handler
func NewExportHandler(db *gorm.DB, cfg *config.Config) *ExportHandler {
	return &ExportHandler{expenses: NewExpenseHandler(db, cfg)}
}

var exportHeaders = []string{"ID", "Data", "Descrição", "Categoria", "Valor", "Pago"}

// Export exporta os gastos do usuário em CSV ou XLSX
// @Summary Exportar gastos
// @Description Aceita os mesmos filtros de data da listagem
// @Tags Gastos
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param formato query string false "csv (padrão) ou xlsx"
// @Param startDate query string false "Data inicial (YYYY-MM-DD)"
// @Param endDate query string false "Data final (YYYY-MM-DD)"
// @Success 200 {file} file "Arquivo"
// @Failure 400 {object} ErrorResponse "Formato inválido"
// @Router /api/gastos/exportar [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("formato", "csv")
	if format != "csv" && format != "xlsx" {
		BadRequest(c, "Formato inválido, use csv ou xlsx")
		return
	}

	q, ok := h.expenses.filtered(c)
	if !ok {
		return
	}
	expenses := make([]models.ExpenseDetail, 0)
	if err := q.Order("g.data DESC, g.id DESC").Find(&expenses).Error; err != nil {
		h.expenses.InternalError(c, err)
		return
	}

	filename := "gastos_" + time.Now().Format("20060102")
	if format == "xlsx" {
		h.writeXLSX(c, filename+".xlsx", expenses)
		return
	}
	h.writeCSV(c, filename+".csv", expenses)
}

func exportRow(e models.ExpenseDetail) []string {
	category := ""
	if e.CategoryName != nil {
		category = *e.CategoryName
	}
	paid := "Não"
	if e.Paid {
		paid = "Sim"
	}
	return []string{
		strconv.FormatUint(uint64(e.ID), 10),
		e.Date.String(),
		e.Description,
		category,
		e.Amount.StringFixed(2),
		paid,
	}
}

func (h *ExportHandler) writeCSV(c *gin.Context, filename string, expenses []models.ExpenseDetail) {
	buf := new(bytes.Buffer)
	// BOM para o Excel reconhecer UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		h.expenses.InternalError(c, err)
		return
	}
	for _, e := range expenses {
		if err := writer.Write(exportRow(e)); err != nil {
			h.expenses.InternalError(c, err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.expenses.InternalError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *ExportHandler) writeXLSX(c *gin.Context, filename string, expenses []models.ExpenseDetail) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Gastos"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		h.expenses.InternalError(c, err)
		return
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"059669"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{Border: border})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 12)
	f.SetColWidth(sheet, "C", "C", 32)
	f.SetColWidth(sheet, "D", "D", 18)
	f.SetColWidth(sheet, "E", "F", 12)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	total := decimal.Zero
	for i, e := range expenses {
		row := i + 2
		values := exportRow(e)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		// valor como número para permitir somas na planilha
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), e.Amount.InexactFloat64())
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
		total = total.Add(e.Amount)
	}

	totalRow := len(expenses) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.MergeCell(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("D%d", totalRow))
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), total.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), fmt.Sprintf("%d gastos", len(expenses)))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("F%d", totalRow), totalStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.expenses.InternalError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
