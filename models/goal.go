package models

import (
	"github.com/shopspring/decimal"
)

// Goal meta de economia; CurrentAmount é incrementado aos poucos
type Goal struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Description   string          `json:"descricao" gorm:"column:descricao;size:100;not null"`
	TargetAmount  decimal.Decimal `json:"valor_objetivo" gorm:"column:valor_objetivo;type:decimal(10,2);not null" swaggertype:"number" example:"10000"`
	CurrentAmount decimal.Decimal `json:"valor_atual" gorm:"column:valor_atual;type:decimal(10,2);default:0" swaggertype:"number" example:"250"`
	Deadline      *Date           `json:"data_limite" gorm:"column:data_limite;type:date" swaggertype:"string" example:"2024-12-31"`
	UserID        uint            `json:"usuario_id" gorm:"column:usuario_id;index;not null"`
	User          *User           `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Goal) TableName() string {
	return "metas"
}
