package main

import (
	"context"
	"os"

	"github.com/farshadmz/storefront-backend/internal/admin"
	"github.com/farshadmz/storefront-backend/pkg/config"
	"github.com/farshadmz/storefront-backend/pkg/db"
	"github.com/farshadmz/storefront-backend/pkg/logger"
	"github.com/joho/godotenv"
)

// bootstrap-admin runs as a release hook. It exits 0 on every outcome except
// config or connection failures, so a deploy is never blocked by an account
// that already exists or by a missing admin password.
func main() {
	logg := logger.New(logger.Options{ServiceName: "bootstrap-admin"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "bootstrap-admin",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	bootstrapper := admin.NewBootstrapper(dbClient, logg, cfg.Admin, cfg.Password)
	outcome, err := bootstrapper.EnsureAdmin(ctx)
	if err != nil {
		// Log loudly but do not fail the release: the storefront serves
		// read traffic fine without the admin account, and the next deploy
		// retries.
		logg.Error(ctx, "admin bootstrap failed", err)
		return
	}

	logg.Info(logg.WithField(ctx, "outcome", string(outcome)), "bootstrap-admin finished")
}
