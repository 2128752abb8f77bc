package router

import (
	"net/http"
	"time"

	"fintrack/api"
	"fintrack/config"
	_ "fintrack/docs"
	"fintrack/events"
	"fintrack/logging"
	"fintrack/middleware"
	"fintrack/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps 路由依赖
type Deps struct {
	Transactions store.TransactionStore
	Budgets      store.BudgetStore
	Events       events.Publisher
	WS           *api.WSHandler
	Limiter      *middleware.RateLimiter
	Logger       *logging.Logger
	Now          func() time.Time
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if deps.Logger != nil {
		r.Use(logging.Middleware(deps.Logger))
	}
	r.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	apiGroup := r.Group("/api")
	if deps.Limiter != nil {
		apiGroup.Use(deps.Limiter.Middleware())
	}
	{
		transactionHandler := api.NewTransactionHandler(deps.Transactions, deps.Events)
		apiGroup.POST("/transactions", transactionHandler.Create)
		apiGroup.GET("/transactions", transactionHandler.List)
		apiGroup.PUT("/transactions", transactionHandler.Update)
		apiGroup.DELETE("/transactions", transactionHandler.Delete)

		budgetHandler := api.NewBudgetHandler(deps.Budgets, deps.Events)
		apiGroup.POST("/budgets", budgetHandler.Upsert)
		apiGroup.GET("/budgets", budgetHandler.List)
		apiGroup.DELETE("/budgets", budgetHandler.Delete)

		apiGroup.GET("/categories", api.NewCategoryHandler().List)

		insightsHandler := api.NewInsightsHandler(deps.Transactions, deps.Budgets, deps.Now)
		apiGroup.GET("/insights", insightsHandler.Dashboard)

		exportHandler := api.NewExportHandler(deps.Transactions)
		export := apiGroup.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
		}

		if deps.WS != nil {
			apiGroup.GET("/ws", deps.WS.HandleWS)
		}
	}

	return r
}

// CORSMiddleware 跨域中间件，未配置来源时允许全部
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Disposition", "Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
