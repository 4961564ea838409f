package cmd

import (
	"fmt"

	"stock-sync/core/archive"
	"stock-sync/core/config"
	"stock-sync/core/database"
	"stock-sync/core/logger"
	"stock-sync/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles what every command builds from the configuration.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	archive *archive.Archive
}

// bootstrap loads configuration, the logger and the archive. The database is
// optional: a failed connection is logged and leaves db nil.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	arc, err := newArchive(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logg, archive: arc}

	if cfg.Database.Driver == "" {
		logg.Info("Run ledger disabled")
	} else if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		a.db = conn
		logg.Info("Connected to ledger database", zap.String("driver", cfg.Database.Driver))
	}

	return a, nil
}

func newArchive(cfg *config.Config) (*archive.Archive, error) {
	var client storage.Client
	if cfg.Archive.Backend == archive.BackendS3 {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}
	arc, err := archive.New(cfg.Archive, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	return arc, nil
}

func (a *app) sweeper() *archive.Sweeper {
	return archive.NewSweeper(a.cfg.Archive.Retention(), a.logger, a.archive.Stores()...)
}
