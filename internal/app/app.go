package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pariwisata-jepara/backend/internal/config"
	"github.com/pariwisata-jepara/backend/internal/dashboard"
	"github.com/pariwisata-jepara/backend/internal/httpserver"
	"github.com/pariwisata-jepara/backend/internal/httpserver/deps"
	"github.com/pariwisata-jepara/backend/internal/logger"
	"github.com/pariwisata-jepara/backend/internal/redis"
	"github.com/pariwisata-jepara/backend/internal/repo"
	"github.com/pariwisata-jepara/backend/internal/seed"
	"github.com/pariwisata-jepara/backend/internal/store"
	filestore "github.com/pariwisata-jepara/backend/internal/store/file"
	"github.com/pariwisata-jepara/backend/internal/store/redisstore"
	"github.com/pariwisata-jepara/backend/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Pick the collection store backend. File is the default; redis is
	// selected via config and fails fast when unreachable.
	var backend store.Backend
	var redisClient *goredis.Client
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDialTimeout,
			ReadTimeout:    cfg.RedisReadTimeout,
			WriteTimeout:   cfg.RedisWriteTimeout,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		redisClient = client
		backend = redisstore.New(client)
		loggerClient.Info("using redis collection store", logger.String("addr", cfg.RedisAddr))
	default:
		backend = filestore.New(cfg.DataDir)
		loggerClient.Info("using file collection store", logger.String("dir", cfg.DataDir))
	}

	// Seed empty collections so a fresh install has content.
	if cfg.SeedFile != "" {
		seeder := seed.NewLoader(cfg.SeedFile, backend, loggerClient)
		if err := seeder.Apply(context.Background()); err != nil {
			loggerClient.Warn("failed to apply seed data, continuing with empty collections",
				logger.String("file", cfg.SeedFile),
				logger.Error(err))
		}
	}

	destinations := repo.NewDestinations(backend, nil)
	reports := repo.NewReports(backend, nil)
	events := repo.NewEvents(backend, nil)

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		Destinations: destinations,
		Reports:      reports,
		Events:       events,
		Dashboard:    dashboard.New(backend, nil),
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Pariwisata API v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Pariwisata %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}

	a.logger.Info("✅ Pariwisata API stopped cleanly")
	return nil
}
