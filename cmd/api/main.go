package main

import (
	"context"
	"database/sql"
	"log"

	"go.uber.org/zap"

	"github.com/climate-solutions/solutions-backend/config"
	"github.com/climate-solutions/solutions-backend/internal/auth"
	"github.com/climate-solutions/solutions-backend/internal/bootstrap"
	"github.com/climate-solutions/solutions-backend/internal/catalog"
	pgcatalog "github.com/climate-solutions/solutions-backend/internal/catalog/postgres"
	"github.com/climate-solutions/solutions-backend/internal/catalog/static"
	"github.com/climate-solutions/solutions-backend/internal/quotes"
	"github.com/climate-solutions/solutions-backend/internal/session"
)

const serviceName = "solutions-site"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := newLogger(cfg.App.Environment)
	defer logger.Sync()

	ctx := context.Background()
	bootstrap.SetGinMode(cfg.App.Environment)

	var (
		provider catalog.Provider
		db       *sql.DB
	)
	switch cfg.App.CatalogDriver {
	case "postgres":
		db, err = bootstrap.OpenDB(&cfg.Database)
		if err != nil {
			logger.Fatal("unable to start server", zap.Error(err))
		}
		defer db.Close()
		provider = pgcatalog.NewStore(db)
	default:
		provider = static.NewStore()
	}

	// An initialization failure aborts listening entirely.
	if err := provider.Initialize(ctx); err != nil {
		logger.Fatal("unable to start server", zap.Error(err))
	}

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal("unable to start server", zap.Error(err))
	}
	defer rdb.Close()

	sessions := session.NewManager(rdb, cfg.Session.Secret, cfg.Session.Duration, cfg.Session.IdleDuration)
	verifier := auth.EnvCredentials{
		UserName: cfg.Admin.UserName,
		Password: cfg.Admin.Password,
	}

	quoteClient := quotes.NewClient(cfg.Quotes.BaseURL, logger)
	prewarmer := quotes.NewPrewarmer(quoteClient, logger)
	prewarmer.Start()
	defer prewarmer.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		Catalog:      provider,
		Quotes:       quoteClient,
		Sessions:     sessions,
		Verifier:     verifier,
		CookieMaxAge: int(cfg.Session.Duration.Seconds()),
		DB:           db,
		Redis:        rdb,
		Log:          logger,
	})

	logger.Info("server listening",
		zap.String("port", cfg.Server.Port),
		zap.String("catalog", cfg.App.CatalogDriver),
	)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	return logger
}
