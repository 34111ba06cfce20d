package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLangsCommand(cctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "langs URL",
		Short: "List available subtitle languages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := cctx.newAdapter()
			if err != nil {
				return err
			}
			ctx, stop := signalContext(cmd)
			defer stop()

			entries, err := a.ListSubtitleLanguages(ctx, args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No subtitles found for this video.")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				source := "manual"
				if entry.AutoGenerated {
					source = "auto"
				}
				rows = append(rows, []string{entry.Code, entry.Name, source})
			}
			fmt.Fprintln(out, renderTable([]string{"Code", "Name", "Source"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}
