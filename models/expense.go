package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense gasto
type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Description string          `json:"descricao" gorm:"column:descricao;size:100;not null"`
	Amount      decimal.Decimal `json:"valor" gorm:"column:valor;type:decimal(10,2);not null" swaggertype:"number" example:"49.90"`
	Date        Date            `json:"data" gorm:"column:data;type:date;not null;index" swaggertype:"string" example:"2024-01-15"`
	CategoryID  *uint           `json:"categoria_id" gorm:"column:categoria_id;index"`
	UserID      uint            `json:"usuario_id" gorm:"column:usuario_id;index;not null"`
	Paid        bool            `json:"pago" gorm:"column:pago;default:false"`
	Category    *Category       `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	User        *User           `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName nome da tabela
func (Expense) TableName() string {
	return "gastos"
}

// ExpenseDetail gasto com nome e cor da categoria (LEFT JOIN)
type ExpenseDetail struct {
	Expense
	CategoryName  *string `json:"categoria_nome" gorm:"column:categoria_nome"`
	CategoryColor *string `json:"categoria_cor" gorm:"column:categoria_cor"`
}

// ExpensesWithCategory gastos com o nome e a cor da categoria (alias "g" e "c")
func ExpensesWithCategory(db *gorm.DB) *gorm.DB {
	return db.Table("gastos g").
		Select("g.*, c.nome AS categoria_nome, c.cor AS categoria_cor").
		Joins("LEFT JOIN categorias c ON g.categoria_id = c.id")
}
