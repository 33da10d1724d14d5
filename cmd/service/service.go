// @title        Conecta Joven API
// @version      1.0
// @description  Conecta Joven 入口網站的後端 API：帳號、職缺、課程與諮詢預約
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name cj_session
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conecta-joven/internal/cache"
	"conecta-joven/internal/catalog"
	"conecta-joven/internal/config"
	"conecta-joven/internal/database"
	"conecta-joven/internal/logger"
	"conecta-joven/internal/router"
	"conecta-joven/internal/seed"
	"conecta-joven/internal/service"
	"conecta-joven/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	zlog "github.com/rs/zerolog/log"

	_ "conecta-joven/docs" // 註冊 swagger 文件

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	loadCatalog     = catalog.Default
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackFn      = database.RollbackAll
	runSeed         = seed.Run
	startServer     = serveUntilSignal
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

const shutdownTimeout = 10 * time.Second

// serveUntilSignal 啟動 HTTP 服務，收到 SIGINT/SIGTERM 後優雅關閉
func serveUntilSignal(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	lgr := logger.New(cfg.LogLevel, cfg.LogPretty)
	ctx := lgr.WithContext(context.Background())

	if cfg.MigrateDown {
		if err := rollbackFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 退回失敗: %w", err)
		}
		lgr.Warn().Msg("all migrations rolled back")
		return nil
	}

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	if err := runSeed(ctx, db, seed.Options{AdminEmail: cfg.AdminEmail, AdminPassword: cfg.AdminPassword, Demo: cfg.SeedDemo}, lgr); err != nil {
		return fmt.Errorf("Seed 執行失敗: %w", err)
	}

	cat, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("目錄載入失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount, lgr)
	defer wp.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = !cfg.IsProduction()
	e.Use(middleware.Recover())
	e.Use(logger.Middleware(lgr))

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    rdb,
		Sessions: service.NewSessionStore(rdb, cfg.SessionSecret, cfg.SessionTTL),
		Workers:  wp,
		Catalog:  cat,
		Config:   cfg,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	lgr.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Env).Msg("server starting")
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		zlog.Error().Err(err).Msg("service stopped")
		exitFunc(1)
	}
}
