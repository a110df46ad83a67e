package models

// Category categoria de gastos definida pelo usuário
type Category struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	Name   string  `json:"nome" gorm:"column:nome;size:50;not null"`
	Icon   *string `json:"icone" gorm:"column:icone;size:30"`
	Color  *string `json:"cor" gorm:"column:cor;size:20"`
	UserID uint    `json:"usuario_id" gorm:"column:usuario_id;index;not null"`
	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string {
	return "categorias"
}

// DemoCategories categorias criadas para o usuário demo
var DemoCategories = []Category{
	{Name: "Alimentação", Icon: strPtr("shopping-cart"), Color: strPtr("vermelho")},
	{Name: "Transporte", Icon: strPtr("car"), Color: strPtr("azul")},
	{Name: "Moradia", Icon: strPtr("home"), Color: strPtr("verde")},
	{Name: "Lazer", Icon: strPtr("film"), Color: strPtr("amarelo")},
	{Name: "Saúde", Icon: strPtr("heart"), Color: strPtr("rosa")},
}

func strPtr(s string) *string {
	return &s
}
