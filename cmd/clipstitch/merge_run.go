package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// runMerge drives a merge (or dry run) over dir and prints a per-group
// summary. Log output goes to stderr and the log file; stdout stays readable.
func runMerge(cmd *cobra.Command, ctx *commandContext, dir string, dryRun bool) error {
	logger, err := ctx.buildLogger()
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	runner, cleanup, err := ctx.newRunner(logger, dryRun)
	if err != nil {
		return err
	}
	defer cleanup()

	results, runErr := runner.Run(cmd.Context(), dir)

	out := cmd.OutOrStdout()
	if len(results) == 0 && runErr == nil {
		fmt.Fprintln(out, "No multi-chapter recordings found.")
		return nil
	}
	for _, result := range results {
		switch {
		case result.Merged:
			fmt.Fprintf(out, "merged %s (%s) -> %s\n", result.Key, pluralClips(len(result.Clips)), result.FinalPath)
		case dryRun:
			fmt.Fprintf(out, "would merge %s (%s) -> %s\n", result.Key, pluralClips(len(result.Clips)), result.FinalPath)
		default:
			fmt.Fprintf(out, "failed %s (%s)\n", result.Key, pluralClips(len(result.Clips)))
		}
	}
	return runErr
}
