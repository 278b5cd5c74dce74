package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/jiu45/JobPortal/config"
)

// Logger wraps slog so the rest of the codebase does not depend on a
// concrete handler. The zero value is usable and logs via slog.Default().
type Logger struct {
	s *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LoggerMode.Level)

	var handler slog.Handler
	if cfg.LoggerMode.Prod {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return &Logger{s: slog.New(handler)}, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l Logger) log() *slog.Logger {
	if l.s == nil {
		return slog.Default()
	}
	return l.s
}

func (l Logger) With(args ...any) Logger {
	return Logger{s: l.log().With(args...)}
}

func (l Logger) Debug(msg string, args ...any) { l.log().Debug(msg, args...) }
func (l Logger) Info(msg string, args ...any)  { l.log().Info(msg, args...) }
func (l Logger) Warn(msg string, args ...any)  { l.log().Warn(msg, args...) }
func (l Logger) Error(msg string, args ...any) { l.log().Error(msg, args...) }

func (l Logger) Infof(format string, args ...any) {
	l.log().Info(sprintf(format, args...))
}

func (l Logger) Warnf(format string, args ...any) {
	l.log().Warn(sprintf(format, args...))
}

func (l Logger) Errorf(format string, args ...any) {
	l.log().Error(sprintf(format, args...))
}
