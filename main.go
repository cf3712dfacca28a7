package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	_ "github.com/swaggo/swag" // 导入 swag

	"advisory_faq/catalog"
	"advisory_faq/config"
	"advisory_faq/db"
	_ "advisory_faq/docs" // 导入 swagger 文档
	"advisory_faq/handlers"
	"advisory_faq/logger"
	"advisory_faq/metrics"
	"advisory_faq/ranking"
	"advisory_faq/services"
)

func main() {
	cfg := config.Load()

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	// 加载静态目录，之后进程内不再修改
	loadCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Catalog.LoadTimeoutSec)*time.Second)
	faqCatalog, err := loadCatalog(loadCtx, cfg)
	cancel()
	if err != nil {
		logger.Error("加载目录失败", "source", cfg.Catalog.Source, "error", err)
		os.Exit(1)
	}
	stats := faqCatalog.Stats()
	logger.Info("目录加载成功", "faqs", stats.FAQCount, "posts", stats.PostCount, "version", stats.Version)

	weights, err := ranking.LoadWeights(cfg.Ranking.WeightsFile)
	if err != nil {
		logger.Warn("加载排序权重失败，使用默认权重", "path", cfg.Ranking.WeightsFile, "error", err)
	}

	var (
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.NewMetrics()
		if err := m.Register(reg); err != nil {
			logger.Error("注册指标失败", "error", err)
			os.Exit(1)
		}
		gatherer = reg
	}

	svc := services.NewFAQService(faqCatalog, ranking.NewRanker(weights), m)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)

	handlers.RegisterRoutes(r, cfg, svc, gatherer)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  secondsOr(cfg.Timeouts.RequestSec, 10),
		WriteTimeout: secondsOr(cfg.Timeouts.ResponseSec, 10),
		IdleTimeout:  secondsOr(cfg.Timeouts.IdleSec, 60),
	}

	go func() {
		serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("服务器启动", "address", serverAddr)
		logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("服务器异常退出", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务器")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器关闭失败", "error", err)
	}
}

// loadCatalog 按配置加载目录，mysql 来源时只在加载期间持有连接
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Source != catalog.SourceMySQL {
		return catalog.Load(ctx, cfg)
	}

	if err := db.InitMySQLWithConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("init mysql: %w", err)
	}
	defer db.Close()
	logger.Info("MySQL连接成功",
		"max_open_conns", cfg.DB.MaxOpenConns,
		"max_idle_conns", cfg.DB.MaxIdleConns,
		"conn_max_lifetime", cfg.DB.ConnMaxLifetime)

	return catalog.Load(ctx, cfg)
}

func secondsOr(sec, def int) time.Duration {
	if sec <= 0 {
		sec = def
	}
	return time.Duration(sec) * time.Second
}
