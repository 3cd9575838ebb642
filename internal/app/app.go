package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/config"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/constants"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/metrics"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/service"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/store"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/ui"
	"github.com/pterm/pterm"
)

type App struct {
	Config  *config.Config
	Service *service.Service
	Source  store.Source
	Metrics *metrics.Recorder
	Logger  *pterm.Logger
}

// NewApp opens the configured account source and builds the service on top
// of it. The returned cleanup closes the source and, when configured, writes
// the metrics textfile; it must run once the command has finished.
func NewApp(cfg *config.Config, logOut io.Writer) (*App, func(), error) {
	level, err := ui.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger := ui.NewLogger(logOut, level)

	rec := metrics.NewRecorder(logger)

	src, err := NewSource(cfg.Account)
	if err != nil {
		if cfg.Metrics.Textfile != "" {
			rec.RecordFailure(err)
			writeMetrics(rec, cfg.Metrics.Textfile, logger)
		}
		return nil, nil, fmt.Errorf("failed to open account source: %w", err)
	}

	logger.Debug("account source ready", logger.Args(
		"source", cfg.Account.Source,
		"config", cfg.ConfigPath,
	))

	svc := service.NewService(src, rec, logger)

	cleanup := func() {
		if err := src.Close(); err != nil {
			logger.Warn("error closing account source", logger.Args("error", err))
		}
		if cfg.Metrics.Textfile != "" {
			writeMetrics(rec, cfg.Metrics.Textfile, logger)
		}
	}

	return &App{
		Config:  cfg,
		Service: svc,
		Source:  src,
		Metrics: rec,
		Logger:  logger,
	}, cleanup, nil
}

func NewSource(acc config.AccountConfig) (store.Source, error) {
	switch strings.ToLower(strings.TrimSpace(acc.Source)) {
	case constants.SourceJSON:
		return store.NewJSONSource(acc.File), nil
	case constants.SourceSQLite:
		return store.NewSQLiteStore(acc.Database, acc.ID)
	default:
		return nil, fmt.Errorf("invalid account source '%s'", acc.Source)
	}
}

func writeMetrics(rec *metrics.Recorder, path string, logger *pterm.Logger) {
	if err := rec.WriteTextfile(path); err != nil {
		logger.Warn("failed to write metrics textfile", logger.Args("path", path, "error", err))
	}
}
