// Package history persists a record of live merge runs in SQLite.
//
// Each run captures the directory processed and, per merge group, the clip
// count, the ffmpeg command, the final output path, and the outcome. The
// database is an audit trail, not working state: nothing in the merge
// pipeline reads it back, and dry runs never touch it. Schema changes bump
// schemaVersion in schema.go; users clear the database to adopt the new
// schema.
package history
