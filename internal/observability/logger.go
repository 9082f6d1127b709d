package observability

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"

	"github.com/couchcryptid/metar/internal/config"
)

// NewLogger builds the tool's logger. Diagnostics write to w (standard
// error for the CLI) so bulletin bodies on standard output stay clean
// enough to pipe.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{Level: level}))
}

func parseLevel(s string) slog.Level {
	switch s {
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
