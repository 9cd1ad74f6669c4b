package history_test

import (
	"context"
	"path/filepath"
	"testing"

	"clipstitch/internal/config"
	"clipstitch/internal/history"
)

func newStore(t *testing.T) *history.Store {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.History.Path = filepath.Join(base, "history.db")

	store, err := history.Open(&cfg)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenRejectsDisabledHistory(t *testing.T) {
	cfg := config.Default()
	cfg.History.Enabled = false
	if _, err := history.Open(&cfg); err == nil {
		t.Fatal("expected error when history is disabled")
	}
}

func TestRunRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	run, err := store.StartRun(ctx, "/card/DCIM/100GOPRO")
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected run ID")
	}

	records := []*history.GroupRecord{
		{
			RunID:     run.ID,
			GroupKey:  "GH010013",
			ClipCount: 3,
			Command:   "ffmpeg -f concat ...",
			Output:    "/card/DCIM/100GOPRO/GH010013.MP4",
			Status:    history.StatusMerged,
		},
		{
			RunID:        run.ID,
			GroupKey:     "GH010016",
			ClipCount:    4,
			Status:       history.StatusFailed,
			ErrorMessage: "exit status 1",
		},
	}
	for _, rec := range records {
		if err := store.RecordGroup(ctx, rec); err != nil {
			t.Fatalf("RecordGroup: %v", err)
		}
	}

	run.GroupCount = len(records)
	if err := store.FinishRun(ctx, run); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	runs, err := store.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].ID != run.ID || runs[0].GroupCount != 2 {
		t.Fatalf("unexpected run: %+v", runs[0])
	}
	if runs[0].FinishedAt.IsZero() {
		t.Fatal("expected finished timestamp")
	}

	got, err := store.GroupsForRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GroupsForRun: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 group records, got %d", len(got))
	}
	if got[0].GroupKey != "GH010013" || got[0].Status != history.StatusMerged {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if got[1].GroupKey != "GH010016" || got[1].Status != history.StatusFailed || got[1].ErrorMessage == "" {
		t.Fatalf("unexpected second record: %+v", got[1])
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	first, err := store.StartRun(ctx, "/cards/a")
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.StartRun(ctx, "/cards/b")
	if err != nil {
		t.Fatal(err)
	}

	runs, err := store.ListRuns(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected limit of 1, got %d", len(runs))
	}
	if runs[0].ID != second.ID && runs[0].ID != first.ID {
		t.Fatalf("unexpected run %q", runs[0].ID)
	}
}
