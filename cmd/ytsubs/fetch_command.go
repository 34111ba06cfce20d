package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFetchCommand(cctx *commandContext) *cobra.Command {
	var lang string
	var format string

	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Download subtitles for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "srt", "json":
			default:
				return fmt.Errorf("unsupported format %q (want text, srt, or json)", format)
			}

			a, _, err := cctx.newAdapter()
			if err != nil {
				return err
			}
			ctx, stop := signalContext(cmd)
			defer stop()

			doc, err := a.DownloadSubtitles(ctx, args[0], lang)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(cmd, doc)
			case "srt":
				fmt.Fprint(out, doc.Render())
			default:
				fmt.Fprintln(out, doc.PlainText())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "Subtitle language code")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, srt, json")
	return cmd
}
