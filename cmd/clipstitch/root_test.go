package main

import (
	"os"
	"path/filepath"
	"testing"

	"clipstitch/internal/testsupport"
)

func TestRootDryRunReportsGroupsWithoutMutation(t *testing.T) {
	env := setupCLITestEnv(t)
	card := filepath.Join(env.baseDir, "card")
	if err := os.MkdirAll(card, 0o755); err != nil {
		t.Fatal(err)
	}
	testsupport.WriteClips(t, card, 10013, 20013, 30013, 10014)

	out, _, err := runCLI(t, []string{"--dryrun", card}, env.configPath)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	requireContains(t, out, "would merge GH010013 (3 clips)")

	entries, err := os.ReadDir(card)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("dry run mutated the card: %d entries", len(entries))
	}
}

func TestRootReportsEmptyDirectory(t *testing.T) {
	env := setupCLITestEnv(t)
	card := t.TempDir()

	out, _, err := runCLI(t, []string{"--dryrun", card}, env.configPath)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	requireContains(t, out, "No multi-chapter recordings found.")
}

func TestRootRejectsExtraArguments(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"one", "two"}, env.configPath); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestPlanRendersGroupTable(t *testing.T) {
	env := setupCLITestEnv(t)
	card := filepath.Join(env.baseDir, "card")
	if err := os.MkdirAll(card, 0o755); err != nil {
		t.Fatal(err)
	}
	testsupport.WriteClips(t, card, 10013, 20013, 10014)

	out, _, err := runCLI(t, []string{"plan", card}, env.configPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "GH010013")
	requireContains(t, out, "GH010013.MP4, GH020013.MP4")
	requireContains(t, out, "Merged Output")
}

func TestHistoryEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No merge runs recorded yet.")
}

func TestHistoryDisabled(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.History.Enabled = false
	writeTestConfig(t, env.configPath, env.cfg)

	if _, _, err := runCLI(t, []string{"history"}, env.configPath); err == nil {
		t.Fatal("expected error when history is disabled")
	}
}

func TestDepsReportsStubbedBinary(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"deps"}, env.configPath)
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	requireContains(t, out, "FFmpeg")
	requireContains(t, out, "[OK]")
}

func TestVersionSkipsConfig(t *testing.T) {
	out, _, err := runCLI(t, []string{"version"}, "")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "clipstitch ")
}
