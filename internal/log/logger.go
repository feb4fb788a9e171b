// Package log configures the zerolog logger shared by wmconf packages.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level  string    // optional log level ("debug", "info", etc.)
	Output io.Writer // optional writer (defaults to os.Stderr)
}

var (
	mu   sync.Mutex
	base zerolog.Logger
	set  bool
)

// Configure replaces the base logger. The CLI calls it once flags are parsed;
// packages that log before that get a default stderr logger.
func Configure(cfg Config) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	} else if env := os.Getenv("WMCONF_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339

	w := cfg.Output
	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(w).Level(level).With().Timestamp().Logger()
	set = true
}

func logger() zerolog.Logger {
	mu.Lock()
	if !set {
		mu.Unlock()
		Configure(Config{})
		mu.Lock()
	}
	l := base
	mu.Unlock()
	return l
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str("component", component).Logger()
}
