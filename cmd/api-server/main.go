package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pawmate/petcare-backend/internal/api"
	"github.com/pawmate/petcare-backend/internal/appointment"
	"github.com/pawmate/petcare-backend/internal/cart"
	"github.com/pawmate/petcare-backend/internal/catalog"
	"github.com/pawmate/petcare-backend/internal/config"
	"github.com/pawmate/petcare-backend/internal/db"
	redisclient "github.com/pawmate/petcare-backend/internal/redis"
	"github.com/pawmate/petcare-backend/internal/snapshot"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("api-server starting up",
		zap.String("env", cfg.Env),
		zap.String("http_port", cfg.HTTPPort))

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	routerCfg := api.RouterConfig{
		Logger:  logger,
		Env:     cfg.Env,
		Version: version,
	}

	// Catalog: Postgres when configured, built-in fixtures otherwise.
	if cfg.PostgresDSN != "" {
		pgCtx, cancelPg := context.WithTimeout(rootCtx, 10*time.Second)
		pgPool, err := db.ConnectPostgres(pgCtx, cfg.PostgresDSN)
		cancelPg()
		if err != nil {
			logger.Fatal("postgres connection error", zap.Error(err))
		}
		defer pgPool.Close()
		logger.Info("connected to Postgres")

		routerCfg.PgPool = pgPool
		routerCfg.Catalog = catalog.NewPgRepository(pgPool)
	} else {
		logger.Info("no POSTGRES_DSN, serving built-in catalog")
		routerCfg.Catalog = catalog.NewFixtureRepository()
	}

	// State snapshots: Redis when configured, in-memory otherwise.
	var snaps snapshot.Store
	if cfg.RedisAddr != "" {
		rdb, err := redisclient.NewRedisClient(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
		if err != nil {
			logger.Fatal("redis connection error", zap.Error(err))
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Warn("error closing redis", zap.Error(err))
			}
		}()
		logger.Info("connected to Redis")

		routerCfg.Redis = rdb
		snaps = redisclient.NewSnapshotStore(rdb)
	} else {
		logger.Info("no REDIS_ADDR, state will not survive restarts")
		snaps = snapshot.NewMemory()
	}

	initCtx, cancelInit := context.WithTimeout(rootCtx, 10*time.Second)
	appointments := appointment.New(initCtx, snaps, cfg.SnapshotTimeout, logger)
	carts := cart.New(initCtx, snaps, cfg.SnapshotTimeout, logger)
	cancelInit()

	appointments.Subscribe(func() {
		logger.Debug("appointment state changed")
	})
	carts.Subscribe(func() {
		logger.Debug("cart state changed")
	})

	routerCfg.Appointments = appointments
	routerCfg.Cart = carts

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      api.NewRouter(routerCfg),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-rootCtx.Done()
	logger.Info("shutting down api-server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown error", zap.Error(err))
	}

	// Let in-flight snapshot writes finish before the process exits.
	appointments.Flush()
	carts.Flush()
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
