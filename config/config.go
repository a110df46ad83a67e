package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config configuração da aplicação
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Email     EmailConfig     `mapstructure:"email"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig configuração do servidor HTTP
type ServerConfig struct {
	Port       string `mapstructure:"port"`
	Mode       string `mapstructure:"mode"`
	BaseURL    string `mapstructure:"base_url"`
	CORSOrigin string `mapstructure:"cors_origin"`
	BodyLimit  int64  `mapstructure:"body_limit"`
}

// RateLimitConfig janelas de limitação de requisições
type RateLimitConfig struct {
	MaxRequests        int           `mapstructure:"max_requests"`
	WindowMinutes      int           `mapstructure:"window_minutes"`
	LoginMaxAttempts   int           `mapstructure:"login_max_attempts"`
	LoginWindowMinutes int           `mapstructure:"login_window_minutes"`
	Window             time.Duration `mapstructure:"-"`
	LoginWindow        time.Duration `mapstructure:"-"`
}

// DatabaseConfig configuração do MySQL
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	SeedDemo     bool   `mapstructure:"seed_demo"`
}

// JWTConfig configuração do token
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig configuração de e-mail
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// LogConfig configuração de log
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ErrMissingJWTSecret o segredo de assinatura é obrigatório
var ErrMissingJWTSecret = errors.New("JWT_SECRET não configurado")

// legacyEnv variáveis de ambiente herdadas da versão Node (.env)
var legacyEnv = map[string]string{
	"server.port":        "PORT",
	"server.cors_origin": "CORS_ORIGIN",
	"database.host":      "DB_HOST",
	"database.port":      "DB_PORT",
	"database.username":  "DB_USER",
	"database.password":  "DB_PASSWORD",
	"database.dbname":    "DB_DATABASE",
	"jwt.secret":         "JWT_SECRET",
	"log.level":          "LOG_LEVEL",
}

// LoadConfig carrega a configuração
// Prioridade: variáveis de ambiente > arquivo externo > configuração embutida
// configPath: caminho opcional para um arquivo externo
func LoadConfig(configPath string) (*Config, error) {
	// .env é opcional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	// 1. configuração embutida
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("falha ao ler configuração embutida: %w", err)
	}

	// 2. arquivo externo (opcional)
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			slog.Warn("não foi possível ler o arquivo de configuração", "path", configPath, "error", err)
		} else {
			slog.Info("configuração externa carregada", "path", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/controle-financeiro")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				slog.Warn("falha ao mesclar configuração externa", "error", err)
			} else {
				slog.Info("configuração externa carregada", "path", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. variáveis de ambiente
	v.SetEnvPrefix("FINANCEIRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, "FINANCEIRO_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("falha ao associar variável %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("falha ao interpretar configuração: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	if c.Server.Port == "" {
		c.Server.Port = ":3000"
	}
	if !strings.HasPrefix(c.Server.Port, ":") {
		c.Server.Port = ":" + c.Server.Port
	}
	if c.Server.CORSOrigin == "" {
		c.Server.CORSOrigin = "*"
	}
	if c.Server.BodyLimit <= 0 {
		c.Server.BodyLimit = 10 << 10
	}

	if c.RateLimit.MaxRequests <= 0 {
		c.RateLimit.MaxRequests = 100
	}
	if c.RateLimit.WindowMinutes <= 0 {
		c.RateLimit.WindowMinutes = 15
	}
	if c.RateLimit.LoginMaxAttempts <= 0 {
		c.RateLimit.LoginMaxAttempts = 10
	}
	if c.RateLimit.LoginWindowMinutes <= 0 {
		c.RateLimit.LoginWindowMinutes = 1
	}
	c.RateLimit.Window = time.Duration(c.RateLimit.WindowMinutes) * time.Minute
	c.RateLimit.LoginWindow = time.Duration(c.RateLimit.LoginWindowMinutes) * time.Minute

	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.Charset == "" {
		c.Database.Charset = "utf8mb4"
	}

	// token válido por 7 dias
	if c.JWT.ExpireHours <= 0 {
		c.JWT.ExpireHours = 7 * 24
	}
	c.JWT.ExpireTime = time.Duration(c.JWT.ExpireHours) * time.Hour
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// DSN string de conexão do driver MySQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=UTC",
		d.Username,
		d.Password,
		d.Host,
		d.Port,
		d.DBName,
		d.Charset,
	)
}

// IsRelease indica modo de produção
func (c *Config) IsRelease() bool {
	return c != nil && c.Server.Mode == "release"
}

// SafeErrorMessage em produção não expõe detalhes internos ao cliente
func (c *Config) SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if c.IsRelease() {
		return fallback
	}
	return err.Error()
}

// PrintConfig registra a configuração atual (sem segredos)
func (c *Config) PrintConfig() {
	slog.Info("configuração atual",
		"port", c.Server.Port,
		"mode", c.Server.Mode,
		"cors_origin", c.Server.CORSOrigin,
		"database", fmt.Sprintf("%s@%s:%s/%s", c.Database.Username, c.Database.Host, c.Database.Port, c.Database.DBName),
		"email", c.Email.Enabled,
	)
}
