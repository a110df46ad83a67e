package database

import (
	"errors"
	"fmt"
	"log/slog"

	"controle-financeiro/auth"
	"controle-financeiro/config"
	"controle-financeiro/logging"
	"controle-financeiro/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	// DemoEmail usuário de demonstração criado na primeira execução
	DemoEmail    = "demo@email.com"
	demoName     = "Usuário Demo"
	demoPassword = "123456"
)

// Open abre o pool de conexões com o MySQL e aplica as migrações.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         logging.GormLogger(logging.ParseLevel(cfg.Log.Level)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao banco: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// pool limitado, compartilhado por todas as requisições
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("banco não respondeu: %w", err)
	}
	slog.Info("conectado ao MySQL", "host", cfg.Database.Host, "database", cfg.Database.DBName)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if cfg.Database.SeedDemo {
		if err := SeedDemo(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate cria ou atualiza as tabelas. A ordem importa por causa das chaves estrangeiras.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Expense{},
		&models.Income{},
		&models.Goal{},
	); err != nil {
		return fmt.Errorf("falha ao migrar tabelas: %w", err)
	}
	return nil
}

// SeedDemo cria o usuário demo e suas categorias quando ainda não existem.
func SeedDemo(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", DemoEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("falha ao procurar usuário demo: %w", err)
	}

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user := models.User{Name: demoName, Email: DemoEmail, Password: hashed}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("falha ao criar usuário demo: %w", err)
		}

		categories := make([]models.Category, len(models.DemoCategories))
		for i, c := range models.DemoCategories {
			c.UserID = user.ID
			categories[i] = c
		}
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("falha ao criar categorias demo: %w", err)
		}
		slog.Info("usuário demo criado", "email", DemoEmail, "categorias", len(categories))
		return nil
	})
}
