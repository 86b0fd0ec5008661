// @title        Star Wars API
// @version      1.0
// @description  星際大戰星球、角色與使用者收藏的後端 API
// @host         localhost:3000
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"starwars-api/internal/cache"
	"starwars-api/internal/config"
	"starwars-api/internal/database"
	"starwars-api/internal/handler"
	"starwars-api/internal/identity"
	"starwars-api/internal/logger"
	"starwars-api/internal/router"
	"starwars-api/internal/seed"
	"starwars-api/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	_ "starwars-api/docs" // 引入 swag 產出的 docs

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
	initLogger      = logger.Init
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	seedFn          = seed.Run
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

// setup 讀取設定並初始化 logger，所有子命令共用
func setup() (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	initLogger(cfg.LogLevel, cfg.Debug)
	return cfg, nil
}

// newCache 未設定 REDIS_ADDR 時使用 Noop
func newCache(cfg *config.Config) (cache.Cache, error) {
	if !cfg.CacheEnabled() {
		log.Info("REDIS_ADDR 未設定，停用列表快取")
		return cache.Noop{}, nil
	}
	return newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = handler.HTTPErrorHandler(e)
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	return e
}

func run() error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	cch, err := newCache(cfg)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer func() {
		if err := cch.Close(); err != nil {
			log.WithError(err).Warn("關閉 Redis 連線失敗")
		}
	}()

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()
	if cfg.CacheEnabled() {
		for _, task := range handler.WarmupTasks(ctx, db, cch, cfg.CacheTTL) {
			wp.Submit(task)
		}
	}

	e := newEcho(cfg)
	router.Setup(e, db, cch, router.Options{
		Resolver:   identity.Static{UserID: cfg.DefaultUserID},
		CacheTTL:   cfg.CacheTTL,
		AdminToken: cfg.AdminToken,
	})
	if !cfg.AdminEnabled() {
		log.Info("ADMIN_TOKEN 未設定，停用管理路由")
	}

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.WithField("addr", cfg.Addr()).Info("starting server")
	if err := startServer(e, cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func migrate(down bool) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if down {
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("RollbackAll 失敗: %w", err)
		}
		log.Info("migrations rolled back")
		return nil
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}
	log.Info("migrations applied")
	return nil
}

func seedDB(ctx context.Context) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	cch, err := newCache(cfg)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer cch.Close()

	res, err := seedFn(ctx, db)
	// 有新增目錄資料時清除列表快取，執行中的伺服器下次請求就會重新讀取
	if res.Planets > 0 || res.People > 0 {
		if ierr := cache.Invalidate(ctx, cch, cache.KeyPlanets, cache.KeyPeople); ierr != nil {
			return errors.Join(err, fmt.Errorf("清除列表快取失敗: %w", ierr))
		}
	}
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		exitFunc(1)
	}
}
