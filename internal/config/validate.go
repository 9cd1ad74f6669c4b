package config

import "errors"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.FFmpeg.Binary == "" {
		return errors.New("ffmpeg.binary must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return errors.New("logging.format must be \"console\" or \"json\"")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path must be set when history is enabled")
	}
	return nil
}
