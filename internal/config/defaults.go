package config

const (
	defaultLogDir       = "~/.local/share/clipstitch/logs"
	defaultFFmpegBinary = "ffmpeg"
	defaultHistoryPath  = "~/.local/share/clipstitch/history.db"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		FFmpeg: FFmpeg{
			Binary: defaultFFmpegBinary,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
