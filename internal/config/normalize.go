package config

import "strings"

func (c *Config) normalize() error {
	logDir, err := expandPath(c.Paths.LogDir)
	if err != nil {
		return err
	}
	c.Paths.LogDir = logDir

	if strings.TrimSpace(c.History.Path) != "" {
		historyPath, err := expandPath(c.History.Path)
		if err != nil {
			return err
		}
		c.History.Path = historyPath
	}

	c.FFmpeg.Binary = strings.TrimSpace(c.FFmpeg.Binary)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
