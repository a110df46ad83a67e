package validation

import (
	"strings"

	"controle-financeiro/models"

	"github.com/shopspring/decimal"
)

// CategoryInput corpo de criação/edição de categoria
type CategoryInput struct {
	Name  string  `json:"nome" example:"Alimentação"`
	Icon  *string `json:"icone" example:"shopping-cart"`
	Color *string `json:"cor" example:"vermelho"`
}

// Category valida e normaliza uma categoria; ícone e cor vazios viram NULL.
func Category(in CategoryInput) (models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Category{}, newError("nome", KindRequired, "Nome é obrigatório")
	}
	if len([]rune(name)) > 50 {
		return models.Category{}, newError("nome", KindOutOfRange, "Nome deve ter no máximo 50 caracteres")
	}
	return models.Category{Name: name, Icon: optional(in.Icon), Color: optional(in.Color)}, nil
}

// ExpenseInput corpo de criação/edição de gasto
type ExpenseInput struct {
	Description string `json:"descricao" example:"Supermercado"`
	Amount      Amount `json:"valor" swaggertype:"number" example:"150.75"`
	Date        string `json:"data" example:"2024-01-15"`
	CategoryID  *uint  `json:"categoria_id" example:"1"`
	Paid        *bool  `json:"pago" example:"false"`
}

// Expense valida um gasto; a posse da categoria é conferida depois, no banco.
func Expense(in ExpenseInput) (models.Expense, error) {
	if blank(in.Description) || !in.Amount.Present() || blank(in.Date) || in.CategoryID == nil || *in.CategoryID == 0 {
		return models.Expense{}, newError("", KindRequired, "Todos os campos são obrigatórios")
	}
	amount, verr := positiveAmount("valor", in.Amount, "Valor deve ser um número", "Valor deve ser positivo")
	if verr != nil {
		return models.Expense{}, verr
	}
	date, verr := parseDate("data", in.Date)
	if verr != nil {
		return models.Expense{}, verr
	}
	categoryID := *in.CategoryID
	return models.Expense{
		Description: strings.TrimSpace(in.Description),
		Amount:      amount,
		Date:        date,
		CategoryID:  &categoryID,
		Paid:        in.Paid != nil && *in.Paid,
	}, nil
}

// IncomeInput corpo de criação/edição de receita
type IncomeInput struct {
	Description string `json:"descricao" example:"Salário"`
	Amount      Amount `json:"valor" swaggertype:"number" example:"3500"`
	Date        string `json:"data" example:"2024-01-05"`
	Received    *bool  `json:"recebido" example:"true"`
}

// Income valida uma receita.
func Income(in IncomeInput) (models.Income, error) {
	if blank(in.Description) || !in.Amount.Present() || blank(in.Date) {
		return models.Income{}, newError("", KindRequired, "Descrição, valor e data são obrigatórios")
	}
	amount, verr := positiveAmount("valor", in.Amount, "Valor deve ser um número", "Valor deve ser positivo")
	if verr != nil {
		return models.Income{}, verr
	}
	date, verr := parseDate("data", in.Date)
	if verr != nil {
		return models.Income{}, verr
	}
	return models.Income{
		Description: strings.TrimSpace(in.Description),
		Amount:      amount,
		Date:        date,
		Received:    in.Received != nil && *in.Received,
	}, nil
}

// GoalInput corpo de criação/edição de meta
type GoalInput struct {
	Description   string  `json:"descricao" example:"Reserva de emergência"`
	TargetAmount  Amount  `json:"valor_objetivo" swaggertype:"number" example:"10000"`
	CurrentAmount Amount  `json:"valor_atual" swaggertype:"number" example:"0"`
	Deadline      *string `json:"data_limite" example:"2024-12-31"`
}

// Goal valida uma meta; valor_atual ausente vale 0.
func Goal(in GoalInput) (models.Goal, error) {
	if blank(in.Description) || !in.TargetAmount.Present() {
		return models.Goal{}, newError("", KindRequired, "Descrição e valor objetivo são obrigatórios")
	}
	target, verr := positiveAmount("valor_objetivo", in.TargetAmount, "Valor objetivo deve ser um número", "Valor objetivo deve ser positivo")
	if verr != nil {
		return models.Goal{}, verr
	}

	current := decimal.Zero
	if in.CurrentAmount.Present() {
		d, ok := in.CurrentAmount.Decimal()
		if !ok {
			return models.Goal{}, newError("valor_atual", KindInvalid, "Valor atual deve ser um número")
		}
		if d.IsNegative() {
			return models.Goal{}, newError("valor_atual", KindOutOfRange, "Valor atual não pode ser negativo")
		}
		if current, verr = withinLimit("valor_atual", d.Round(2)); verr != nil {
			return models.Goal{}, verr
		}
	}

	var deadline *models.Date
	if in.Deadline != nil && !blank(*in.Deadline) {
		d, verr := parseDate("data_limite", *in.Deadline)
		if verr != nil {
			return models.Goal{}, verr
		}
		deadline = &d
	}

	return models.Goal{
		Description:   strings.TrimSpace(in.Description),
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
	}, nil
}

// GoalDepositInput corpo de PATCH /api/metas/:id/add
type GoalDepositInput struct {
	Amount Amount `json:"valor" swaggertype:"number" example:"150"`
}

// GoalDeposit valida o valor a somar em valor_atual.
func GoalDeposit(in GoalDepositInput) (decimal.Decimal, error) {
	if !in.Amount.Present() {
		return decimal.Zero, newError("valor", KindRequired, "Valor inválido")
	}
	amount, verr := positiveAmount("valor", in.Amount, "Valor inválido", "Valor inválido")
	if verr != nil {
		return decimal.Zero, verr
	}
	return amount, nil
}

// GoalBalance soma o depósito ao valor atual sem passar do limite da coluna.
func GoalBalance(current, deposit decimal.Decimal) (decimal.Decimal, error) {
	total, verr := withinLimit("valor", current.Add(deposit))
	if verr != nil {
		return decimal.Zero, verr
	}
	return total, nil
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
