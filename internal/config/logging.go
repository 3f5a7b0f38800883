package config

import (
	"io"
	"log/slog"
	"strings"
)

// Logger builds a slog.Logger writing to w. Format "text" selects the text
// handler, anything else JSON. Unknown levels fall back to info.
func (l LoggingConfig) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.level()}
	if strings.EqualFold(l.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func (l LoggingConfig) level() slog.Level {
	switch strings.ToLower(l.Level) {
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
