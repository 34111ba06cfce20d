package main

import (
	"context"
	"log/slog"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"ytsubs/internal/adapter"
	"ytsubs/internal/config"
	"ytsubs/internal/logging"
	"ytsubs/internal/ytdlp"
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

// newExtractor builds the real tool client from the resolved config.
func (c *commandContext) newExtractor() (*ytdlp.Client, *config.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	return ytdlp.New(cfg.Tool.Binary, cfg.Paths.TempDir, cfg.Tool.RequestTimeout), cfg, nil
}

// newAdapter wires the extractor into an adapter for one-shot CLI commands.
func (c *commandContext) newAdapter() (*adapter.Adapter, *slog.Logger, error) {
	client, cfg, err := c.newExtractor()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return adapter.New(client, logger), logger, nil
}

// signalContext derives a context canceled by SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
}
