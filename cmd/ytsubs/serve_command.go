package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"ytsubs/internal/adapter"
	"ytsubs/internal/deps"
	"ytsubs/internal/logging"
	"ytsubs/internal/mcpserver"
	"ytsubs/internal/ytdlp"
)

func newServeCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the MCP tool interface over stdio",
		Long: "Serve exposes get_video_info, list_subtitle_languages, and download_subtitles " +
			"as MCP tools over stdin/stdout. Logs go to stderr.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := cctx.newExtractor()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd)
			defer stop()

			logDependencies(ctx, logger, client, cfg.Tool.Binary)
			if cfg.Tool.SelfUpdate {
				client.StartBackgroundUpdate(logger)
			}

			srv := mcpserver.New(adapter.New(client, logger), logger, version)
			if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			logger.Info("mcp server stopped")
			return nil
		},
	}
}

// logDependencies records tool availability at startup. A missing binary is
// logged, not fatal: every call will fail with tool_unavailable until the
// operator installs it, and the server keeps answering.
func logDependencies(ctx context.Context, logger *slog.Logger, client *ytdlp.Client, binary string) {
	for _, status := range deps.Check(deps.Requirements(binary)) {
		if !status.Available {
			logger.Warn("dependency missing",
				logging.String("name", status.Name),
				logging.String("command", status.Command),
				logging.String("detail", status.Detail))
			continue
		}
		attrs := []any{
			logging.String("name", status.Name),
			logging.String("path", status.Path),
		}
		versionCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if v, err := client.Version(versionCtx); err == nil {
			attrs = append(attrs, logging.String("version", v))
		}
		cancel()
		logger.Info("dependency available", attrs...)
	}
}
