package logger

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level string
}

// Logger is a thin slog wrapper with printf-style methods so that the rest
// of the codebase can depend on a four-method interface instead of slog.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(cfg *Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}
	return &Logger{
		logger: slog.New(slog.NewJSONHandler(os.Stdout, opts)),
	}
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.logger.Error(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.logger.Warn(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.logger.Info(format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.logger.Debug(format, v...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
