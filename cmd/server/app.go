// cmd/server/app.go
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/scmdash/scm-backend/internal/config"
	"github.com/scmdash/scm-backend/internal/database"
	"github.com/scmdash/scm-backend/internal/faults"
	"github.com/scmdash/scm-backend/internal/hooks"
	"github.com/scmdash/scm-backend/internal/i18n"
	"github.com/scmdash/scm-backend/internal/insights"
	"github.com/scmdash/scm-backend/internal/kvstore"
	"github.com/scmdash/scm-backend/internal/services"
	"github.com/scmdash/scm-backend/internal/store"
)

// app holds everything the commands share.
type app struct {
	cfg     *config.Config
	db      *gorm.DB
	kv      kvstore.Store
	client  *insights.Client
	manager *hooks.Manager
}

func bootstrap(ctx context.Context) (*app, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	setupLogging(cfg.Logging)

	// Initialize i18n
	if err := i18n.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize i18n: %w", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	a := &app{cfg: cfg}
	if err := a.openStore(); err != nil {
		return nil, err
	}

	profile, err := faults.FromConfig(cfg.Faults)
	if err != nil {
		a.close()
		return nil, err
	}

	a.client, err = insights.NewClient(ctx, a.kv, insightProvider(cfg.Insights), insightFallback(cfg.Insights))
	if err != nil {
		a.close()
		return nil, err
	}

	exporter, err := services.NewExportService(cfg)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to initialize export service: %w", err)
	}

	deps := services.Deps{
		Injector: faults.NewInjector(profile),
		Catalog:  services.NewProductCatalog(a.kv, store.DemoProducts()),
		Lang:     cfg.I18n.DefaultLocale,
	}
	registry := store.NewRegistry(store.DemoSeed()).WithLimits(store.Limits{
		MaxSessions: cfg.Sessions.MaxSessions,
		IdleTTL:     cfg.Sessions.IdleTTL,
	})
	a.manager = hooks.NewManager(registry, deps, exporter, a.client, hooks.Options{})

	return a, nil
}

// openStore selects where the product catalogue and the insight key persist.
func (a *app) openStore() error {
	switch a.cfg.Storage.Driver {
	case "postgres":
		db, err := database.Initialize(a.cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := database.RunMigrations(db); err != nil {
			database.Close(db)
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		a.db = db
		a.kv = kvstore.NewPostgres(db)
	case "file":
		kv, err := kvstore.NewFile(a.cfg.Storage.FilePath)
		if err != nil {
			return fmt.Errorf("failed to open store file: %w", err)
		}
		a.kv = kv
	default:
		a.kv = kvstore.NewMemory()
	}

	logrus.WithField("driver", a.cfg.Storage.Driver).Info("Key/value store ready")
	return nil
}

func (a *app) close() {
	if a.manager != nil {
		a.manager.Close()
	}
	if a.db != nil {
		database.Close(a.db)
	}
}

func insightProvider(cfg config.InsightsConfig) insights.Provider {
	if cfg.Provider == "remote" {
		return insights.NewRemoteProvider(cfg.Endpoint, time.Duration(cfg.Timeout)*time.Second)
	}
	return insights.NewDemoProvider(cfg.Seed)
}

// insightFallback serves demo data when the remote service fails.
func insightFallback(cfg config.InsightsConfig) insights.Provider {
	if cfg.Provider == "remote" {
		return insights.NewDemoProvider(cfg.Seed)
	}
	return nil
}

func setupLogging(cfg config.LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
