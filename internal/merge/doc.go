// Package merge turns chapter groups into merged recordings.
//
// For every group with at least two clips the runner plans an ffmpeg concat
// invocation, executes it, parks the source chapters in a folder named after
// the group key, and drops the merged output where the primary chapter used
// to be. Dry-run mode walks the identical path but replaces every mutation
// (manifest write, transcoder invocation, directory creation, clip moves)
// with a log line describing it, returning the same result shape as a live
// run.
//
// A failing group does not abort the run: remaining groups are still
// processed and the failures come back joined. Nothing is retried; ffmpeg
// and local filesystem operations fail the same way twice.
package merge
