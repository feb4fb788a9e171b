// Package hook runs functions on window manager lifecycle events.
package hook

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	wmlog "github.com/wmconf/wmconf/internal/log"
)

// Event names a lifecycle event fired by the host.
type Event string

const (
	// Startup fires each time the configuration is loaded, including
	// after a restart.
	Startup Event = "startup"
	// StartupOnce fires on the first startup only.
	StartupOnce Event = "startup_once"
	// StartupComplete fires after all Startup subscribers have run.
	StartupComplete Event = "startup_complete"
	// Shutdown fires before the host exits.
	Shutdown Event = "shutdown"
)

// Func is a hook subscriber.
type Func func(ctx context.Context) error

// Registry holds the subscribers for each event.
type Registry struct {
	mu     sync.Mutex
	subs   map[Event][]Func
	logger zerolog.Logger
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		subs:   make(map[Event][]Func),
		logger: wmlog.WithComponent("hook"),
	}
}

// Subscribe adds fn to the subscribers of ev.
func (r *Registry) Subscribe(ev Event, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[ev] = append(r.subs[ev], fn)
}

// Count returns the number of subscribers of ev.
func (r *Registry) Count(ev Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs[ev])
}

// Fire runs the subscribers of ev in subscription order. A failing
// subscriber is logged and does not stop the rest. It returns the number of
// subscribers that failed.
func (r *Registry) Fire(ctx context.Context, ev Event) int {
	r.mu.Lock()
	subs := append([]Func(nil), r.subs[ev]...)
	r.mu.Unlock()

	failed := 0
	for i, fn := range subs {
		if err := fn(ctx); err != nil {
			failed++
			r.logger.Error().
				Err(err).
				Str("event", "hook.failed").
				Str("hook", string(ev)).
				Int("index", i).
				Msg("hook subscriber failed")
		}
	}
	r.logger.Debug().
		Str("event", "hook.fired").
		Str("hook", string(ev)).
		Int("subscribers", len(subs)).
		Msg("hook fired")
	return failed
}

// Autostart returns a hook that runs the script at path and waits for it.
// The script's exit status is ignored; only a failure to start it is
// reported.
func Autostart(path string) Func {
	return func(ctx context.Context) error {
		p, err := ExpandHome(path)
		if err != nil {
			return err
		}
		c := exec.CommandContext(ctx, p)
		if err := c.Start(); err != nil {
			return errors.Wrapf(err, "could not start %q", p)
		}
		// Ignore any error from the program itself.
		_ = c.Wait()
		return nil
	}
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "expand home")
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
