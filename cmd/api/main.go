package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	httpadp "merhaba-api/internal/adapter/http"
	"merhaba-api/internal/adapter/middleware"
	"merhaba-api/internal/adapter/repository/gormrepo"
	"merhaba-api/internal/adapter/repository/redisrepo"
	"merhaba-api/internal/config"
	"merhaba-api/internal/domain/greeting"
	"merhaba-api/internal/domain/visit"
	"merhaba-api/internal/infrastructure/cache"
	"merhaba-api/internal/infrastructure/db"
	"merhaba-api/internal/infrastructure/health"
	"merhaba-api/internal/logging"
	uc "merhaba-api/internal/usecase/greeting"
)

const serviceName = "merhaba-api"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "merhaba-api:", err)
		os.Exit(1)
	}
}

func run() error {
	dotenvErr := godotenv.Load()

	cfg := config.Load()
	log := logging.New(logging.Config{
		ServiceName: serviceName,
		Environment: cfg.AppEnv,
		LogLevel:    cfg.LogLevel,
	})
	defer func() { _ = log.Sync() }()

	if dotenvErr != nil {
		log.Debug("no .env found, using process environment")
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", zap.Error(err))
		return fmt.Errorf("config: %w", err)
	}
	loc, _ := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ready := health.NewRegistry(0)
	ready.Register("self", health.Self)

	var recorders []visit.Recorder

	if cfg.RedisEnabled() {
		rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Error("redis connect failed", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			return fmt.Errorf("redis: %w", err)
		}
		defer rdb.Close()
		ready.Register("redis", cache.Probe(rdb))
		recorders = append(recorders, redisrepo.NewVisitCounter(rdb, ""))
		log.Info("redis visit counter enabled", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
	}

	if cfg.DatabaseEnabled() {
		gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
		if err != nil {
			log.Error("database connect failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
			return fmt.Errorf("database: %w", err)
		}
		defer func() { _ = db.Close(gdb) }()
		journal := gormrepo.NewVisitJournal(gdb)
		if err := journal.Migrate(ctx); err != nil {
			log.Error("visit journal migration failed", zap.Error(err))
			return fmt.Errorf("migrate: %w", err)
		}
		ready.Register("database", db.Probe(gdb))
		recorders = append(recorders, journal)
		log.Info("visit journal enabled", zap.String("driver", cfg.DBDriver))
	}

	usecase := uc.NewUsecase(uc.Options{
		Location:      loc,
		Logger:        log,
		Recorders:     recorders,
		RecordTimeout: cfg.VisitRecordTimeout,
	})

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		metrics = middleware.NewMetrics()
	}

	e := httpadp.NewRouter(httpadp.NewHandler(usecase, ready), httpadp.RouterOptions{
		Logger:  log,
		Metrics: metrics,
	})
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	addr, err := httpadp.Listen(e, cfg.Addr())
	if err != nil {
		log.Error("listen failed", zap.Error(err))
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(cfg.Addr())
	}()

	log.Info("=================================")
	log.Info("🚀 " + greeting.AppName + " başlatıldı!")
	log.Info("📍 http://localhost:" + cfg.AppPort + " adresinden erişebilirsiniz")
	log.Info("=================================", zap.Stringer("listen", addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
			return err
		}
	}
	return nil
}
