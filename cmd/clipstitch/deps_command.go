package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"clipstitch/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check the external tools clipstitch depends on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries([]deps.Requirement{
				deps.FFmpeg(cfg.FFmpeg.Binary),
			})

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			missing := false
			for _, status := range statuses {
				kind := statusOK
				message := status.Command
				if !status.Available {
					message = status.Detail
					if status.Optional {
						kind = statusWarn
					} else {
						kind = statusError
						missing = true
					}
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
				if status.Description != "" {
					fmt.Fprintf(out, "%s%s\n", statusIndent+statusIndent, status.Description)
				}
			}
			if missing {
				return errors.New("missing required dependencies")
			}
			return nil
		},
	}
}
