package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/decache/cmd/decache/opts"
	"github.com/walteh/decache/pkg/config"
	declog "github.com/walteh/decache/pkg/log"
	"github.com/walteh/decache/pkg/operation"
	"github.com/walteh/decache/pkg/rules"
	"github.com/walteh/decache/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	backup     bool
	async      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	logger := zerolog.Ctx(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Flags override the config file
	if backup {
		cfg.Backup = true
	}
	if async {
		cfg.Async = true
	}

	return &opts.RootOpts{
		Options: operation.Options{
			Config:    cfg,
			Engine:    rules.NewEngine(rules.DefaultRules()),
			StatusMgr: status.New(cfg.ProvidersDir, logger),
			UserLog:   status.NewUserLogger(ctx),
			Logger:    logger,
		},
		Console: declog.New(os.Stdout, logger.GetLevel()),
		Runner:  operation.NewRunner(logger, cfg.Async),
	}, nil
}

// loadConfig reads the config file when one is present and falls back
// to the built-in target set otherwise.
func loadConfig(ctx context.Context) (*config.Config, error) {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		zerolog.Ctx(ctx).Debug().Str("path", configFile).Msg("config file not found, using built-in target set")
		cfg := config.Default()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.Load(ctx, configFile)
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".decache.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&backup, "backup", false, "write a .bak copy before rewriting a file")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "run the batch on a background goroutine")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
