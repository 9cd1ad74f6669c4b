package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"clipstitch/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List past merge runs, or the groups of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return fmt.Errorf("open merge history: %w", err)
			}
			if store == nil {
				return errors.New("merge history is disabled in the configuration")
			}
			defer store.Close()

			if len(args) == 1 {
				return printRunGroups(cmd, store, args[0])
			}
			return printRuns(cmd, store, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}

func printRuns(cmd *cobra.Command, store *history.Store, limit int) error {
	runs, err := store.ListRuns(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("list merge runs: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No merge runs recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			run.Path,
			run.StartedAt.Local().Format(time.DateTime),
			finishedAt(run),
			strconv.Itoa(run.GroupCount),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Run", "Path", "Started", "Finished", "Groups"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))
	return nil
}

func printRunGroups(cmd *cobra.Command, store *history.Store, runID string) error {
	records, err := store.GroupsForRun(cmd.Context(), runID)
	if err != nil {
		return fmt.Errorf("list groups for run %s: %w", runID, err)
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintf(out, "No groups recorded for run %s.\n", runID)
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		detail := rec.Output
		if rec.Status == history.StatusFailed {
			detail = rec.ErrorMessage
		}
		rows = append(rows, []string{
			rec.GroupKey,
			strconv.Itoa(rec.ClipCount),
			string(rec.Status),
			detail,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Group", "Clips", "Status", "Output / Error"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
	))
	return nil
}

func finishedAt(run *history.Run) string {
	if run.FinishedAt.IsZero() {
		return "-"
	}
	return run.FinishedAt.Local().Format(time.DateTime)
}
