package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"controle-financeiro/config"
	"controle-financeiro/database"
	"controle-financeiro/logging"
	"controle-financeiro/router"
)

// @title API de Controle Financeiro Pessoal
// @version 1.0
// @description API para gerenciamento de finanças pessoais: categorias, gastos, receitas, metas e relatórios
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "caminho de um arquivo de configuração externo (opcional)")
	flag.StringVar(&configFile, "c", "", "caminho do arquivo de configuração (abreviado)")
	flag.StringVar(&port, "port", "", "porta de escuta, ex.: 3000 ou :3000")
	flag.StringVar(&port, "p", "", "porta de escuta (abreviado)")
	flag.BoolVar(&showVersion, "version", false, "mostra a versão")
	flag.BoolVar(&showVersion, "v", false, "mostra a versão (abreviado)")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("controle-financeiro v" + version)
		return
	}

	logging.Setup("info")

	// configuração embutida + arquivo externo opcional + ambiente
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		slog.Error("falha ao carregar configuração", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level)

	// a flag tem precedência sobre a configuração
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		slog.Info("porta definida pela linha de comando", "port", port)
	}

	cfg.PrintConfig()

	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("falha ao inicializar o banco", "error", err)
		os.Exit(1)
	}

	r := router.SetupRouter(cfg, db)

	slog.Info("servidor iniciado",
		"api", fmt.Sprintf("http://localhost%s/api", cfg.Server.Port),
		"docs", fmt.Sprintf("http://localhost%s/api-docs", cfg.Server.Port),
	)
	if err := r.Run(cfg.Server.Port); err != nil {
		slog.Error("falha ao iniciar o servidor", "error", err)
		os.Exit(1)
	}
}
