package router

import (
	"net/http"

	"controle-financeiro/api"
	"controle-financeiro/auth"
	"controle-financeiro/config"
	_ "controle-financeiro/docs"
	"controle-financeiro/middleware"
	"controle-financeiro/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter monta o servidor HTTP
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	// registro próprio por engine, sem estado global
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	r := gin.New()
	r.Use(
		middleware.Recovery(!cfg.IsRelease()),
		middleware.RequestID(),
		middleware.Logger(),
		metrics.Handler(),
		middleware.SecurityHeaders(middleware.DefaultHeadersConfig()),
		middleware.CORS(cfg.Server.CORSOrigin),
		middleware.GlobalRateLimit(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
		middleware.BodyLimit(cfg.Server.BodyLimit),
	)

	r.GET("/", api.Index)
	r.GET("/health", api.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger
	r.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
	})
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpireTime)
	authHandler := api.NewAuthHandler(db, cfg, tokens)
	categoryHandler := api.NewCategoryHandler(db, cfg)
	expenseHandler := api.NewExpenseHandler(db, cfg)
	exportHandler := api.NewExportHandler(db, cfg)
	incomeHandler := api.NewIncomeHandler(db, cfg)
	goalHandler := api.NewGoalHandler(db, cfg)
	reportHandler := api.NewReportHandler(db, cfg, service.NewEmailService(&cfg.Email))

	jwtAuth := middleware.JWTAuth(tokens)
	apiGroup := r.Group("/api")
	{
		// autenticação
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", middleware.LoginRateLimit(cfg.RateLimit.LoginMaxAttempts, cfg.RateLimit.LoginWindow), authHandler.Login)
			authGroup.GET("/verify", jwtAuth, authHandler.Verify)
		}

		// rotas que exigem token
		authorized := apiGroup.Group("")
		authorized.Use(jwtAuth)

		categories := authorized.Group("/categorias")
		{
			categories.POST("", categoryHandler.Create)
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		expenses := authorized.Group("/gastos")
		{
			expenses.POST("", expenseHandler.Create)
			expenses.GET("", expenseHandler.List)
			expenses.GET("/exportar", exportHandler.Export)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		incomes := authorized.Group("/receitas")
		{
			incomes.POST("", incomeHandler.Create)
			incomes.GET("", incomeHandler.List)
			incomes.GET("/:id", incomeHandler.Get)
			incomes.PUT("/:id", incomeHandler.Update)
			incomes.DELETE("/:id", incomeHandler.Delete)
		}

		goals := authorized.Group("/metas")
		{
			goals.POST("", goalHandler.Create)
			goals.GET("", goalHandler.List)
			goals.GET("/:id", goalHandler.Get)
			goals.PUT("/:id", goalHandler.Update)
			goals.PATCH("/:id/add", goalHandler.Add)
			goals.DELETE("/:id", goalHandler.Delete)
		}

		reports := authorized.Group("/relatorios")
		{
			reports.GET("/mensal", reportHandler.Monthly)
			reports.GET("/mensal/grafico", reportHandler.MonthlyChart)
			reports.POST("/mensal/enviar", reportHandler.SendMonthly)
			reports.GET("/periodo", reportHandler.Period)
			reports.GET("/dashboard", reportHandler.Dashboard)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Rota não encontrada"})
	})

	return r
}
