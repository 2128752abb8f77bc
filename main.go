package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fintrack/api"
	"fintrack/config"
	"fintrack/database"
	"fintrack/events"
	"fintrack/logging"
	"fintrack/middleware"
	"fintrack/router"
	"fintrack/store"

	"github.com/joho/godotenv"
)

// @title 个人记账 API
// @version 1.0
// @description 交易记录、月度预算与支出洞察
// @host localhost:8080
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("fintrack v1.0.0")
		return
	}

	// .env 不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("警告: 读取 .env 失败: %v", err)
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}
	config.PrintConfig()

	logger := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logging.SetDefault(logger)

	if err := database.Init(cfg); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}
	defer database.Close()

	var (
		transactions store.TransactionStore
		budgets      store.BudgetStore
	)
	if db := database.GetDB(); db != nil {
		transactions = store.NewTransactionStore(db)
		budgets = store.NewBudgetStore(db)
	} else {
		transactions = store.NewMemoryTransactionStore()
		budgets = store.NewMemoryBudgetStore()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := events.NewBus(cfg.Events.Buffer)
	defer bus.Close()
	ws := api.NewWSHandler(bus, logger)
	go ws.Run(ctx)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	go limiter.Run(ctx, time.Minute)

	r := router.SetupRouter(cfg, router.Deps{
		Transactions: transactions,
		Budgets:      budgets,
		Events:       bus,
		WS:           ws,
		Limiter:      limiter,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started",
			"addr", cfg.Server.Port,
			"swagger", "http://localhost"+cfg.Server.Port+"/swagger/index.html",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = ws.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", logging.FieldError, err)
	}
}
