package config

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation limits.
const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// SetupLogger installs a slog text logger that writes to a rotated file at
// logPath. The returned closer releases the file.
func (c *Config) SetupLogger(logPath string) io.Closer {
	w := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: c.LogLevel(),
	})

	slog.SetDefault(slog.New(handler))

	return w
}

// LogLevel converts the configured level name to a slog.Level. Unknown names
// fall back to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
