// Package logger builds zerolog loggers for ghsearch.
// The terminal belongs to the TUI, so the default sink is an append-only file.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultFile is the log file used when none is configured
const DefaultFile = "ghsearch.log"

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures the logger
type Options struct {
	Level     string
	Format    string // "json" or "console"
	Component string
	Writer    io.Writer
}

// New builds a logger from options. A nil Writer means stderr.
func New(opt Options) Logger {
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if strings.EqualFold(opt.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	return ctx.Logger()
}

// OpenFile opens (creating if needed) an append-only log file
func OpenFile(path string) (*os.File, error) {
	if path == "" {
		path = DefaultFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// Named returns a child logger with a component field
func Named(l Logger, component string) Logger {
	if component == "" {
		return l
	}
	return l.With().Str("component", component).Logger()
}

// parseLevel maps config strings to zerolog levels; unknown values mean info
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

type ctxKey struct{ name string }

var keyRequestID = ctxKey{"request_id"}

// WithRequestID annotates ctx with the id of one dispatched query
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, id)
}

// RequestID returns the id stored by WithRequestID, or ""
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(keyRequestID).(string); ok {
		return v
	}
	return ""
}

// C returns a child of l enriched with the request id from ctx
func C(ctx context.Context, l Logger) Logger {
	if id := RequestID(ctx); id != "" {
		return l.With().Str("request_id", id).Logger()
	}
	return l
}
