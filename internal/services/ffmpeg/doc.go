// Package ffmpeg wraps the external transcoder used to concatenate chapter
// files.
//
// The client speaks ffmpeg's concat demuxer: a manifest listing one
// `file '<absolute path>'` line per clip in play order, stream-copied into a
// single output. Planning (temp path allocation, manifest body, command
// line) is separated from execution so dry-run mode can report exactly what
// a live run would do without touching the filesystem or spawning a process.
// Command execution sits behind a small Executor interface for tests.
package ffmpeg
