package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"clipstitch/internal/config"
	"clipstitch/internal/history"
	"clipstitch/internal/logging"
	"clipstitch/internal/merge"
	"clipstitch/internal/services/ffmpeg"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) buildLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg)
}

// openStore returns nil without error when history recording is disabled.
func (c *commandContext) openStore() (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.History.Enabled {
		return nil, nil
	}
	return history.Open(cfg)
}

// newRunner assembles the merge pipeline. The history store is skipped for
// dry runs since they never record anything.
func (c *commandContext) newRunner(logger *slog.Logger, dryRun bool) (*merge.Runner, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := ffmpeg.New(cfg.FFmpeg.Binary)
	if err != nil {
		return nil, nil, err
	}

	var store *history.Store
	cleanup := func() {}
	if !dryRun {
		store, err = c.openStore()
		if err != nil {
			logger.Warn("merge history unavailable", logging.Error(err))
			store = nil
		}
		if store != nil {
			cleanup = func() { _ = store.Close() }
		}
	}
	return merge.NewRunner(cfg, client, store, logger, dryRun), cleanup, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
