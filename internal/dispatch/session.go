package dispatch

import (
	"os"
)

// Session is a fixed runtime state, for simulating presses.
type Session struct {
	Layout      string
	BackendName string
}

// CurrentLayout returns the fixed layout name.
func (s Session) CurrentLayout() string { return s.Layout }

// Backend returns the fixed backend name.
func (s Session) Backend() string { return s.BackendName }

// EnvSession reads the backend from the environment every time it is asked.
type EnvSession struct {
	Layout string
}

// CurrentLayout returns the fixed layout name.
func (s EnvSession) CurrentLayout() string { return s.Layout }

// Backend detects the backend anew on each call.
func (s EnvSession) Backend() string { return DetectBackend() }

// DetectBackend guesses the display server from the session environment:
// "wayland", "x11" or "unknown".
func DetectBackend() string {
	sessionType := os.Getenv("XDG_SESSION_TYPE")
	waylandDisplay := os.Getenv("WAYLAND_DISPLAY")
	x11Display := os.Getenv("DISPLAY")

	if sessionType == "wayland" || waylandDisplay != "" {
		return "wayland"
	}
	if sessionType == "x11" || x11Display != "" {
		return "x11"
	}
	return "unknown"
}
