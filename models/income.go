package models

import (
	"github.com/shopspring/decimal"
)

// Income receita
type Income struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Description string          `json:"descricao" gorm:"column:descricao;size:100;not null"`
	Amount      decimal.Decimal `json:"valor" gorm:"column:valor;type:decimal(10,2);not null" swaggertype:"number" example:"3500.00"`
	Date        Date            `json:"data" gorm:"column:data;type:date;not null;index" swaggertype:"string" example:"2024-01-05"`
	UserID      uint            `json:"usuario_id" gorm:"column:usuario_id;index;not null"`
	Received    bool            `json:"recebido" gorm:"column:recebido;default:false"`
	User        *User           `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Income) TableName() string {
	return "receitas"
}
