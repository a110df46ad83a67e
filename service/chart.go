package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoChartData mês sem gastos
var ErrNoChartData = errors.New("sem gastos no período")

// semCategoria rótulo de gastos cuja categoria foi removida
const semCategoria = "Sem categoria"

// MonthlyPieChart gráfico de pizza (PNG) dos gastos do mês por categoria.
func MonthlyPieChart(report *MonthlyReport) ([]byte, error) {
	if report == nil || len(report.Categories) == 0 || !report.TotalExpenses.IsPositive() {
		return nil, ErrNoChartData
	}

	total := report.TotalExpenses.InexactFloat64()
	values := make([]chart.Value, 0, len(report.Categories))
	for _, c := range report.Categories {
		amount := c.Total.InexactFloat64()
		if amount <= 0 {
			continue
		}
		name := semCategoria
		if c.Category != nil {
			name = *c.Category
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: R$ %s (%.1f%%)", name, c.Total.StringFixed(2), amount/total*100),
			Value: amount,
		})
	}

	pie := chart.PieChart{
		Title:  "Gastos " + report.Period,
		Width:  800,
		Height: 600,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   40,
				Right:  40,
				Bottom: 40,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("falha ao desenhar gráfico: %w", err)
	}
	return buffer.Bytes(), nil
}
