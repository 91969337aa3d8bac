package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide logger. Packages log through it directly.
var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// InitLogger installs a text logger at info level.
func InitLogger() *slog.Logger {
	return InitLoggerWithConfig("info", "text", false)
}

// InitLoggerWithConfig builds the stdout handler for the given level and format,
// wraps it so trace ids are attached, and fans out to the OTel bridge when enabled.
func InitLoggerWithConfig(level, format string, otelEnabled bool) *slog.Logger {
	Logger = slog.New(newHandler(os.Stdout, ParseLevel(level), format, otelEnabled))
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", level, "format", format, "otel", otelEnabled)

	return Logger
}

func newHandler(w io.Writer, level slog.Level, format string, otelEnabled bool) slog.Handler {
	options := &slog.HandlerOptions{Level: level}

	var stdout slog.Handler
	if strings.EqualFold(format, "json") {
		stdout = slog.NewJSONHandler(w, options)
	} else {
		stdout = slog.NewTextHandler(w, options)
	}
	stdout = NewTraceContextHandler(stdout)

	if !otelEnabled {
		return stdout
	}
	return NewMultiHandler(stdout)
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
