package config

import (
	"strings"

	"github.com/wmconf/wmconf/internal/settings"
)

// Widget is one element of a bar. Options holds the widget-specific
// parameters under the host's names; color options hold palette entries.
type Widget struct {
	Kind       string          `yaml:"kind" json:"kind"`
	Defaults   *WidgetDefaults `yaml:"-" json:"-"`
	Font       string          `yaml:"font,omitempty" json:"font,omitempty"`
	Background *Color          `yaml:"background,omitempty" json:"background,omitempty"`
	Options    map[string]any  `yaml:"options,omitempty" json:"options,omitempty"`
	// Transform rewrites the text the widget shows, if set.
	Transform func(string) string `yaml:"-" json:"-"`
}

// Bar is a status bar: its widgets left to right, its thickness in pixels and
// its margin (top, right, bottom, left).
type Bar struct {
	Widgets    []Widget `yaml:"widgets" json:"widgets"`
	Size       int      `yaml:"size" json:"size"`
	Margin     [4]int   `yaml:"margin,flow" json:"margin"`
	Background *Color   `yaml:"background" json:"background"`
}

// Screen is a physical output. Only a top bar is configured.
type Screen struct {
	Top *Bar `yaml:"top,omitempty" json:"top,omitempty"`
}

func newWidgetDefaults(s settings.Settings) *WidgetDefaults {
	return &WidgetDefaults{
		Font:     s.Font,
		FontSize: s.FontSize,
		Padding:  3,
		Decorations: []Decoration{
			{Kind: "PowerLineDecoration", Path: "forward_slash"},
		},
	}
}

func newScreens(p Palette, defaults *WidgetDefaults, s settings.Settings) []Screen {
	w := func(kind string, bg *Color, opts map[string]any) Widget {
		return Widget{Kind: kind, Defaults: defaults, Font: s.Font, Background: bg, Options: opts}
	}
	chord := w("Chord", nil, map[string]any{
		"chords_colors": map[string][2]string{
			"launch": {"#ff0000", "#ffffff"},
		},
	})
	chord.Transform = strings.ToUpper

	spacer := Widget{Kind: "Spacer", Defaults: defaults, Options: map[string]any{"length": 1}}
	stretch := Widget{Kind: "Spacer", Defaults: defaults}
	// StatusNotifier rather than Systray, which does not work on Wayland.
	tray := Widget{Kind: "StatusNotifier", Defaults: defaults, Background: p[colorMauve],
		Options: map[string]any{"padding": 5}}

	return []Screen{{
		Top: &Bar{
			Widgets: []Widget{
				spacer,
				chord,
				w("GroupBox", nil, map[string]any{
					"highlight_method":           "text",
					"disable_drag":               true,
					"this_screen_border":         p[colorBlue],
					"this_current_screen_border": p[colorBlue],
					"urgent_alert_method":        "line",
				}),
				w("CurrentLayout", p[colorMauve], nil),
				w("WindowName", nil, map[string]any{"max_chars": 50}),
				stretch,
				w("Memory", p[colorIndigo], map[string]any{
					"format": "{MemUsed: .0f}{mm} ({MemPercent:.0f}%)",
				}),
				w("UPowerWidget", p[colorMauve], nil),
				w("Clock", p[colorIndigo], map[string]any{
					"format": "%a, %d %b %y | %H:%M %Z",
				}),
				tray,
				w("QuickExit", nil, map[string]any{
					"default_text":     " \uf011 ", // nf-fa-power_off
					"countdown_format": "{}",
				}),
			},
			Size:       36,
			Margin:     [4]int{6, 75, 3, 75},
			Background: p[colorNight],
		},
	}}
}
