// Package config loads, normalizes, and validates clipstitch configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and validates the handful of knobs the CLI
// needs: the ffmpeg binary, log output, and the merge history database.
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths and clear validation errors.
package config
