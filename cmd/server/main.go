package main

import (
	"flag"
	"os"

	"github.com/optomarket/optomarket-api/internal/app"
	"github.com/optomarket/optomarket-api/internal/cache"
	"github.com/optomarket/optomarket-api/internal/config"
	"github.com/optomarket/optomarket-api/internal/logger"
	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/provider"
)

func main() {
	mode := flag.String("mode", app.ModeAll, "run mode: all / api / worker")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer func() { _ = logger.Z().Sync() }()

	if cfg.Server.Mode == "release" && cfg.JWT.SecretKey == "change-me-in-production" {
		logger.Errorw("refusing_to_start_with_default_jwt_secret")
		os.Exit(1)
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		logger.Errorw("database_init_failed", "error", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Errorw("database_migrate_failed", "error", err)
		os.Exit(1)
	}
	if err := models.InitDefaultAdmin(os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		logger.Errorw("default_admin_init_failed", "error", err)
		os.Exit(1)
	}

	// cache is best-effort: a down redis only disables caching and rate
	// limiting
	_ = cache.InitRedis(cfg.Redis)

	container := provider.New(cfg, models.DB)
	if err := app.Run(*mode, container); err != nil {
		logger.Errorw("run_failed", "mode", *mode, "error", err)
		os.Exit(1)
	}
}
