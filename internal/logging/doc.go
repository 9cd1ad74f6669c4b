// Package logging assembles the structured slog loggers used across
// clipstitch.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides attribute helpers plus a no-op logger for tests.
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape. Loggers are injected into the grouping and
// merge code; nothing logs through package-level state.
package logging
