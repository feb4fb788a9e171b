// Package config is the window manager configuration. Load evaluates it once
// into a Config whose fields the host reads by name: keys, groups, layouts,
// screens, mouse, the floating layout and the behavior flags.
//
// To change the keyboard shortcuts, colors, bar widgets and so on, edit the
// files in this package. The programs to launch, modifier keys, fonts and
// input-device choices come from settings.Settings instead.
package config

import (
	"github.com/wmconf/wmconf/internal/hook"
	"github.com/wmconf/wmconf/internal/settings"
)

// InputConfig configures a class of input device on the Wayland backend.
type InputConfig struct {
	AccelProfile string `yaml:"accel_profile,omitempty" json:"accel_profile,omitempty"`
	KbLayout     string `yaml:"kb_layout,omitempty" json:"kb_layout,omitempty"`
}

// Config is the evaluated configuration.
type Config struct {
	Keys           []Key           `yaml:"keys" json:"keys"`
	Groups         []Group         `yaml:"groups" json:"groups"`
	Layouts        []Layout        `yaml:"layouts" json:"layouts"`
	FloatingLayout Layout          `yaml:"floating_layout" json:"floating_layout"`
	Screens        []Screen        `yaml:"screens" json:"screens"`
	Mouse          []Mouse         `yaml:"mouse" json:"mouse"`
	WidgetDefaults *WidgetDefaults `yaml:"widget_defaults" json:"widget_defaults"`
	// ExtensionDefaults is a shallow copy of WidgetDefaults.
	ExtensionDefaults WidgetDefaults `yaml:"extension_defaults" json:"extension_defaults"`

	Palette        Palette         `yaml:"colors" json:"colors"`
	LayoutDefaults *LayoutDefaults `yaml:"layout_defaults" json:"layout_defaults"`

	// DGroupsKeyBinder is nil: no dynamic group key binder.
	DGroupsKeyBinder *string  `yaml:"dgroups_key_binder" json:"dgroups_key_binder"`
	DGroupsAppRules  []string `yaml:"dgroups_app_rules" json:"dgroups_app_rules"`

	FollowMouseFocus        bool   `yaml:"follow_mouse_focus" json:"follow_mouse_focus"`
	BringFrontClick         bool   `yaml:"bring_front_click" json:"bring_front_click"`
	FloatsKeptAbove         bool   `yaml:"floats_kept_above" json:"floats_kept_above"`
	CursorWarp              bool   `yaml:"cursor_warp" json:"cursor_warp"`
	AutoFullscreen          bool   `yaml:"auto_fullscreen" json:"auto_fullscreen"`
	FocusOnWindowActivation string `yaml:"focus_on_window_activation" json:"focus_on_window_activation"`
	ReconfigureScreens      bool   `yaml:"reconfigure_screens" json:"reconfigure_screens"`
	// AutoMinimize lets windows such as games minimize themselves when they
	// lose focus.
	AutoMinimize bool `yaml:"auto_minimize" json:"auto_minimize"`

	WLInputRules   map[string]InputConfig `yaml:"wl_input_rules" json:"wl_input_rules"`
	WLXCursorTheme string                 `yaml:"wl_xcursor_theme" json:"wl_xcursor_theme"`
	WLXCursorSize  int                    `yaml:"wl_xcursor_size" json:"wl_xcursor_size"`

	// WMName is what the window manager calls itself to legacy toolkits.
	// Java UI toolkits check it against a whitelist of non-reparenting
	// window managers, and LG3D is on that list.
	WMName string `yaml:"wmname" json:"wmname"`

	Hooks *hook.Registry `yaml:"-" json:"-"`
}

// Load evaluates the configuration. Every call builds fresh values: two
// Configs never share state.
func Load(s settings.Settings) *Config {
	palette := newPalette()
	defaults := newLayoutDefaults(palette)
	groups := newGroups()
	widgetDefaults := newWidgetDefaults(s)

	keys := baseKeys(s)
	keys = append(keys, vtKeys()...)
	keys = append(keys, groupKeys(s, groups)...)

	c := &Config{
		Keys:              keys,
		Groups:            groups,
		Layouts:           newLayouts(defaults),
		FloatingLayout:    newFloatingLayout(palette),
		Screens:           newScreens(palette, widgetDefaults, s),
		Mouse:             newMouse(s),
		WidgetDefaults:    widgetDefaults,
		ExtensionDefaults: *widgetDefaults,

		Palette:        palette,
		LayoutDefaults: defaults,

		DGroupsAppRules: []string{},

		FollowMouseFocus:        false,
		BringFrontClick:         false,
		FloatsKeptAbove:         true,
		CursorWarp:              false,
		AutoFullscreen:          true,
		FocusOnWindowActivation: "smart",
		ReconfigureScreens:      true,
		AutoMinimize:            true,

		WLInputRules: map[string]InputConfig{
			"type:pointer":  {AccelProfile: s.PointerAccel},
			"type:keyboard": {KbLayout: s.KeyboardLayout},
		},
		WLXCursorTheme: s.CursorTheme,
		WLXCursorSize:  s.CursorSize,

		WMName: "LG3D",

		Hooks: hook.NewRegistry(),
	}
	c.Hooks.Subscribe(hook.Startup, hook.Autostart(s.Autostart))
	return c
}
