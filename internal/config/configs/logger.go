package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the process-wide slog logger shared by the jobs, the
// scheduler and the status server.
type Logger struct {
	// Level is one of debug, info, warn or error. Unknown values mean info.
	Level string `env:"LEVEL" envDefault:"info"`
	// Format is text or json. Unknown values mean text.
	Format string `env:"FORMAT" envDefault:"text"`
	// AddSource adds the file:line of the call site to every record.
	AddSource bool `env:"ADD_SOURCE" envDefault:"false"`
}

func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// NewHandler builds the slog handler writing to w.
func (c Logger) NewHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	if c.SlogFormat() == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
