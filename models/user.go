package models

import (
	"time"
)

// User usuário do sistema
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"column:nome;size:100;not null"`
	Email     string    `json:"email" gorm:"column:email;size:100;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:senha;size:255;not null"`
	CreatedAt time.Time `json:"data_criacao" gorm:"column:data_criacao;autoCreateTime"`
}

// TableName nome da tabela
func (User) TableName() string {
	return "usuarios"
}

// UserSummary dados públicos do usuário devolvidos na autenticação
type UserSummary struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"nome" example:"Usuário Demo"`
	Email string `json:"email" example:"demo@email.com"`
}

// Summary remove o hash da senha
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
