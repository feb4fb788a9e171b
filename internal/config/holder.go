package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	wmlog "github.com/wmconf/wmconf/internal/log"
	"github.com/wmconf/wmconf/internal/settings"
)

// Holder holds the current configuration and rebuilds it when the settings
// file changes.
type Holder struct {
	mu           sync.RWMutex
	current      *Config
	settingsPath string
	watcher      *fsnotify.Watcher
	logger       zerolog.Logger

	listenersMu sync.RWMutex
	listeners   []chan<- *Config
}

// NewHolder returns a Holder serving initial.
func NewHolder(initial *Config, settingsPath string) *Holder {
	return &Holder{
		current:      initial,
		settingsPath: settingsPath,
		logger:       wmlog.WithComponent("config"),
	}
}

// Get returns the current configuration.
func (h *Holder) Get() *Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Reload re-reads the settings and evaluates the configuration again. If
// either step fails, the current configuration is kept.
func (h *Holder) Reload(_ context.Context) error {
	h.logger.Info().Str("event", "config.reload_start").Msg("reloading configuration")

	s, err := settings.Load(h.settingsPath)
	if err != nil {
		h.logger.Error().Err(err).Str("event", "config.reload_failed").Msg("failed to load settings")
		return errors.Wrap(err, "load settings")
	}
	next := Load(s)
	if err := Validate(next); err != nil {
		h.logger.Error().Err(err).Str("event", "config.validation_failed").Msg("new configuration failed validation")
		return errors.Wrap(err, "validate config")
	}

	h.mu.Lock()
	h.current = next
	h.mu.Unlock()

	h.notifyListeners(next)
	h.logger.Info().
		Str("event", "config.reload_success").
		Int("keys", len(next.Keys)).
		Int("groups", len(next.Groups)).
		Msg("configuration reloaded")
	return nil
}

// StartWatcher watches the settings file and reloads when it changes. It is
// a no-op when there is no settings file. The directory is watched rather
// than the file, so saves that rename a new file over the old one are seen.
func (h *Holder) StartWatcher(ctx context.Context) error {
	if h.settingsPath == "" {
		h.logger.Info().Str("event", "config.watcher_disabled").Msg("no settings file to watch")
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	if err := watcher.Add(filepath.Dir(h.settingsPath)); err != nil {
		_ = watcher.Close()
		return errors.Wrap(err, "watch settings file")
	}
	h.watcher = watcher
	h.logger.Info().
		Str("event", "config.watcher_started").
		Str("path", h.settingsPath).
		Msg("watching settings file")

	go h.watchLoop(ctx, watcher)
	return nil
}

const reloadDebounce = 300 * time.Millisecond

func (h *Holder) watchLoop(ctx context.Context, w *fsnotify.Watcher) {
	target := filepath.Clean(h.settingsPath)
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			_ = w.Close()
			h.logger.Info().Str("event", "config.watcher_stopped").Msg("settings watcher stopped")
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			h.logger.Debug().
				Str("event", "config.file_changed").
				Str("op", ev.Op.String()).
				Msg("settings file changed")
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, func() {
				if err := h.Reload(ctx); err != nil {
					h.logger.Error().Err(err).Str("event", "config.auto_reload_failed").Msg("automatic reload failed")
				}
			})

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			h.logger.Error().Err(err).Str("event", "config.watcher_error").Msg("settings watcher error")
		}
	}
}

// Stop closes the watcher, if running.
func (h *Holder) Stop() {
	if h.watcher != nil {
		_ = h.watcher.Close()
	}
}

// Subscribe registers ch to receive each configuration that Reload installs.
// Sends do not block: a full channel misses the update.
func (h *Holder) Subscribe(ch chan<- *Config) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, ch)
}

func (h *Holder) notifyListeners(c *Config) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()
	for _, ch := range h.listeners {
		select {
		case ch <- c:
		default:
			h.logger.Warn().Str("event", "config.listener_skip").Msg("listener channel full")
		}
	}
}
