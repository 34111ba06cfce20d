package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newInfoCommand(cctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "info URL",
		Short: "Show video metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := cctx.newAdapter()
			if err != nil {
				return err
			}
			ctx, stop := signalContext(cmd)
			defer stop()

			info, err := a.GetVideoInfo(ctx, args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title:       %s\n", info.Title)
			fmt.Fprintf(out, "Duration:    %s\n", (time.Duration(info.DurationSeconds) * time.Second).String())
			fmt.Fprintf(out, "Uploader:    %s\n", info.Uploader)
			if info.UploadDate != "" {
				fmt.Fprintf(out, "Upload date: %s\n", info.UploadDate)
			}
			fmt.Fprintf(out, "Views:       %d\n", info.ViewCount)
			if info.Description != "" {
				fmt.Fprintf(out, "\n%s\n", info.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}
