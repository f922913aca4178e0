package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Redacted replaces the value of every redacted attribute.
const Redacted = "[REDACTED]"

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level string
	// Redact lists attribute keys whose values are masked, at any group depth.
	Redact []string
}

// NewLogger creates a new slog.Logger with JSON handler and the specified output.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: redactor(config.Redact),
	})

	return slog.New(handler)
}

func redactor(keys []string) func([]string, slog.Attr) slog.Attr {
	if len(keys) == 0 {
		return nil
	}

	redacted := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		redacted[key] = struct{}{}
	}

	return func(_ []string, attr slog.Attr) slog.Attr {
		if _, ok := redacted[attr.Key]; ok {
			return slog.String(attr.Key, Redacted)
		}

		return attr
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
