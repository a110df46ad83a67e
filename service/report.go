package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"controle-financeiro/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryTotal total de gastos de uma categoria no mês
type CategoryTotal struct {
	Category *string         `json:"categoria" gorm:"column:categoria" example:"Alimentação"`
	Total    decimal.Decimal `json:"total" gorm:"column:total" swaggertype:"number" example:"70"`
	Count    int64           `json:"quantidade" gorm:"column:quantidade" example:"2"`
}

// MonthlyReport relatório mensal
type MonthlyReport struct {
	Period        string          `json:"periodo" example:"1/2024"`
	TotalExpenses decimal.Decimal `json:"totalGastos" swaggertype:"number" example:"70"`
	TotalIncome   decimal.Decimal `json:"totalReceitas" swaggertype:"number" example:"100"`
	Balance       decimal.Decimal `json:"saldo" swaggertype:"number" example:"30"`
	Categories    []CategoryTotal `json:"categorias"`
}

// MonthTotal soma de um mês no formato YYYY-MM
type MonthTotal struct {
	Month string          `json:"mes" gorm:"column:mes" example:"2024-01"`
	Total decimal.Decimal `json:"total" gorm:"column:total" swaggertype:"number" example:"1500"`
}

// PeriodReport totais mês a mês de um intervalo
type PeriodReport struct {
	Period   string       `json:"periodo" example:"2024-01-01 a 2024-06-30"`
	Expenses []MonthTotal `json:"gastos"`
	Income   []MonthTotal `json:"receitas"`
}

// Dashboard resumo do mês corrente
type Dashboard struct {
	MonthExpenses  decimal.Decimal        `json:"gastosMes" swaggertype:"number" example:"850.5"`
	MonthIncome    decimal.Decimal        `json:"receitasMes" swaggertype:"number" example:"3500"`
	Goals          []models.Goal          `json:"metas"`
	LatestExpenses []models.ExpenseDetail `json:"ultimosGastos"`
}

// ReportService agregações por usuário; toda consulta filtra por usuario_id
type ReportService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewReportService cria o serviço
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db, now: time.Now}
}

// Monthly gastos por categoria e receitas recebidas no mês.
func (s *ReportService) Monthly(ctx context.Context, userID uint, year int, month time.Month) (*MonthlyReport, error) {
	start, end := models.MonthRange(year, month)
	db := s.db.WithContext(ctx)

	categories := make([]CategoryTotal, 0)
	err := db.Table("gastos g").
		Select("c.nome AS categoria, SUM(g.valor) AS total, COUNT(g.id) AS quantidade").
		Joins("LEFT JOIN categorias c ON g.categoria_id = c.id").
		Where("g.data BETWEEN ? AND ? AND g.usuario_id = ?", start, end, userID).
		Group("c.nome").
		Order("total DESC").
		Scan(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao somar gastos do mês: %w", err)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Total.GreaterThan(categories[j].Total)
	})

	totalExpenses := decimal.Zero
	for _, c := range categories {
		totalExpenses = totalExpenses.Add(c.Total)
	}

	totalIncome, err := s.receivedIncome(db, userID, start, end)
	if err != nil {
		return nil, err
	}

	return &MonthlyReport{
		Period:        fmt.Sprintf("%d/%d", int(month), year),
		TotalExpenses: totalExpenses,
		TotalIncome:   totalIncome,
		Balance:       totalIncome.Sub(totalExpenses),
		Categories:    categories,
	}, nil
}

// Period totais mensais de gastos e receitas recebidas entre start e end (inclusive).
func (s *ReportService) Period(ctx context.Context, userID uint, start, end models.Date) (*PeriodReport, error) {
	db := s.db.WithContext(ctx)

	expenses, err := monthlyTotals(db.Model(&models.Expense{}).
		Where("data BETWEEN ? AND ? AND usuario_id = ?", start, end, userID))
	if err != nil {
		return nil, fmt.Errorf("falha ao agrupar gastos: %w", err)
	}
	income, err := monthlyTotals(db.Model(&models.Income{}).
		Where("data BETWEEN ? AND ? AND usuario_id = ? AND recebido = ?", start, end, userID, true))
	if err != nil {
		return nil, fmt.Errorf("falha ao agrupar receitas: %w", err)
	}

	return &PeriodReport{
		Period:   fmt.Sprintf("%s a %s", start, end),
		Expenses: expenses,
		Income:   income,
	}, nil
}

func monthlyTotals(q *gorm.DB) ([]MonthTotal, error) {
	totals := make([]MonthTotal, 0)
	err := q.Select("DATE_FORMAT(data, '%Y-%m') AS mes, SUM(valor) AS total").
		Group("mes").
		Order("mes").
		Scan(&totals).Error
	return totals, err
}

// Dashboard totais do mês corrente, até 3 metas abertas e os 5 últimos gastos.
func (s *ReportService) Dashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	now := s.now()
	start, end := models.MonthRange(now.Year(), now.Month())
	today := models.NewDate(now)
	db := s.db.WithContext(ctx)

	var monthExpenses decimal.Decimal
	err := db.Model(&models.Expense{}).
		Select("COALESCE(SUM(valor), 0)").
		Where("data BETWEEN ? AND ? AND usuario_id = ?", start, end, userID).
		Row().Scan(&monthExpenses)
	if err != nil {
		return nil, fmt.Errorf("falha ao somar gastos do mês: %w", err)
	}

	monthIncome, err := s.receivedIncome(db, userID, start, end)
	if err != nil {
		return nil, err
	}

	goals := make([]models.Goal, 0)
	err = db.Where("usuario_id = ? AND (data_limite IS NULL OR data_limite >= ?)", userID, today).
		Order("data_limite ASC").
		Limit(3).
		Find(&goals).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao listar metas: %w", err)
	}

	latest := make([]models.ExpenseDetail, 0)
	err = models.ExpensesWithCategory(db).
		Where("g.usuario_id = ?", userID).
		Order("g.data DESC, g.id DESC").
		Limit(5).
		Find(&latest).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao listar últimos gastos: %w", err)
	}

	return &Dashboard{
		MonthExpenses:  monthExpenses,
		MonthIncome:    monthIncome,
		Goals:          goals,
		LatestExpenses: latest,
	}, nil
}

// receivedIncome soma só receitas com recebido = true
func (s *ReportService) receivedIncome(db *gorm.DB, userID uint, start, end models.Date) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.Model(&models.Income{}).
		Select("COALESCE(SUM(valor), 0)").
		Where("data BETWEEN ? AND ? AND usuario_id = ? AND recebido = ?", start, end, userID, true).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("falha ao somar receitas: %w", err)
	}
	return total, nil
}
