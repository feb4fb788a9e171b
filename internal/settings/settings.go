// Package settings holds the user-tunable values the configuration is built
// from: which modifier keys to use, which programs to launch, fonts and
// input-device choices. The compiled-in defaults can be overridden by a YAML
// file and then by WMCONF_* environment variables.
package settings

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings are the inputs to config.Load.
type Settings struct {
	Mod        string `yaml:"mod"`
	AltMod     string `yaml:"alt_mod"`
	Terminal   string `yaml:"terminal"`
	Browser    string `yaml:"browser"`
	Launcher   string `yaml:"launcher"`
	Screenshot string `yaml:"screenshot"`
	Autostart  string `yaml:"autostart"`

	Font     string `yaml:"font"`
	FontSize int    `yaml:"font_size"`

	KeyboardLayout string `yaml:"keyboard_layout"`
	PointerAccel   string `yaml:"pointer_accel"`
	CursorTheme    string `yaml:"cursor_theme"`
	CursorSize     int    `yaml:"cursor_size"`
}

// Defaults returns the compiled-in settings.
func Defaults() Settings {
	return Settings{
		Mod:        "mod4",
		AltMod:     "mod1",
		Terminal:   "kitty",
		Browser:    "firefox",
		Launcher:   "bemenu-run -b",
		Screenshot: `grim -t jpeg -g "$(slurp)" ~/Pictures/Screenshots/$(date +%Y-%m-%d_%H-%m-%s).jpg`,
		Autostart:  "~/.config/qtile/autostart.sh",

		Font:     "NotoSans Nerd Font",
		FontSize: 13,

		KeyboardLayout: "gb",
		PointerAccel:   "flat",
		CursorTheme:    "breeze_cursors",
		CursorSize:     24,
	}
}

// DefaultPath is where the settings file is looked for when none is given:
// $XDG_CONFIG_HOME/wmconf/settings.yaml, falling back to ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "wmconf", "settings.yaml")
}

// Load reads the settings file at path over the defaults and applies the
// environment. An empty path skips the file.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, errors.Wrap(err, "read settings")
		}
		if err := decode(data, &s); err != nil {
			return Settings{}, errors.Wrapf(err, "parse %s", path)
		}
	}
	if err := applyEnv(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func decode(data []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return err
	}
	return nil
}

var envStrings = []struct {
	name string
	dst  func(*Settings) *string
}{
	{"WMCONF_MOD", func(s *Settings) *string { return &s.Mod }},
	{"WMCONF_ALT_MOD", func(s *Settings) *string { return &s.AltMod }},
	{"WMCONF_TERMINAL", func(s *Settings) *string { return &s.Terminal }},
	{"WMCONF_BROWSER", func(s *Settings) *string { return &s.Browser }},
	{"WMCONF_LAUNCHER", func(s *Settings) *string { return &s.Launcher }},
	{"WMCONF_AUTOSTART", func(s *Settings) *string { return &s.Autostart }},
	{"WMCONF_FONT", func(s *Settings) *string { return &s.Font }},
	{"WMCONF_KEYBOARD_LAYOUT", func(s *Settings) *string { return &s.KeyboardLayout }},
}

func applyEnv(s *Settings) error {
	for _, e := range envStrings {
		if v, ok := os.LookupEnv(e.name); ok && v != "" {
			*e.dst(s) = v
		}
	}
	if v := os.Getenv("WMCONF_FONT_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "WMCONF_FONT_SIZE")
		}
		s.FontSize = n
	}
	return nil
}

// Validate rejects settings the configuration cannot be built from.
func (s Settings) Validate() error {
	switch {
	case s.Mod == "":
		return errors.New("settings: mod is empty")
	case s.AltMod == "":
		return errors.New("settings: alt_mod is empty")
	case s.Terminal == "":
		return errors.New("settings: terminal is empty")
	case s.FontSize <= 0:
		return errors.Errorf("settings: font_size %d is not positive", s.FontSize)
	case s.CursorSize <= 0:
		return errors.Errorf("settings: cursor_size %d is not positive", s.CursorSize)
	}
	return nil
}
