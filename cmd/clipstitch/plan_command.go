package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"clipstitch/internal/logging"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [path]",
		Short: "Show the merge groups for a directory without touching it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cleanup, err := ctx.newRunner(logging.NewNop(), true)
			if err != nil {
				return err
			}
			defer cleanup()

			results, err := runner.Run(cmd.Context(), targetDir(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No multi-chapter recordings found.")
				return nil
			}

			rows := make([][]string, 0, len(results))
			for _, result := range results {
				names := make([]string, 0, len(result.Clips))
				for _, clip := range result.Clips {
					names = append(names, filepath.Base(clip))
				}
				rows = append(rows, []string{
					result.Key,
					strconv.Itoa(len(result.Clips)),
					strings.Join(names, ", "),
					filepath.Base(result.FinalPath),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Group", "Clips", "Chapter Files", "Merged Output"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
