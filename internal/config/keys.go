package config

import (
	"fmt"

	"github.com/wmconf/wmconf/internal/lazy"
	"github.com/wmconf/wmconf/internal/settings"
)

// Key binds a modifier set and key name to one or more commands. Commands
// with filters run only when their filters pass at the time of the press.
type Key struct {
	Modifiers []string    `yaml:"modifiers" json:"modifiers"`
	Name      string      `yaml:"key" json:"key"`
	Commands  []lazy.Call `yaml:"commands" json:"commands"`
	Desc      string      `yaml:"desc" json:"desc"`
}

func key(m []string, name, desc string, cmds ...lazy.Call) Key {
	return Key{Modifiers: m, Name: name, Commands: cmds, Desc: desc}
}

// mods builds a fresh modifier slice, so that no two keys share one.
func mods(m ...string) []string { return m }

const (
	shift   = "shift"
	control = "control"
)

// The layouts that grow and shrink columns sideways, and those that grow and
// shrink the main pane.
var (
	columnLayouts = []string{"bsp", "columns"}
	monadLayouts  = []string{"monadtall", "monadwide"}
)

// screenshotDir is where screenshots are saved.
const screenshotDir = "~/Pictures/Screenshots"

func baseKeys(s settings.Settings) []Key {
	mod, alt := s.Mod, s.AltMod
	return []Key{
		// Switch between windows.
		key(mods(mod), "Left", "Move focus to left", lazy.Layout("left")),
		key(mods(mod), "Right", "Move focus to right", lazy.Layout("right")),
		key(mods(mod), "Down", "Move focus down", lazy.Layout("down")),
		key(mods(mod), "Up", "Move focus up", lazy.Layout("up")),
		key(mods(alt), "Tab", "Move window focus to other window", lazy.Layout("next")),

		// Move windows between columns, or up and down the current stack.
		// Moving out of range in the columns layout creates a new column.
		key(mods(mod, shift), "Left", "Move window to the left", lazy.Layout("shuffle_left")),
		key(mods(mod, shift), "Right", "Move window to the right", lazy.Layout("shuffle_right")),
		key(mods(mod, shift), "Down", "Move window down", lazy.Layout("shuffle_down")),
		key(mods(mod, shift), "Up", "Move window up", lazy.Layout("shuffle_up")),

		key(mods(mod), "equal", "Grow window to the left",
			lazy.Layout("grow_left").When(lazy.OnLayout(columnLayouts...)),
			lazy.Layout("grow").When(lazy.OnLayout(monadLayouts...)),
		),
		key(mods(mod), "minus", "Grow window to the right",
			lazy.Layout("grow_right").When(lazy.OnLayout(columnLayouts...)),
			lazy.Layout("shrink").When(lazy.OnLayout(monadLayouts...)),
		),

		// Growing towards a screen edge shrinks a window that is already
		// on that edge.
		key(mods(mod, control), "Left", "Grow window to the left", lazy.Layout("grow_left")),
		key(mods(mod, control), "Right", "Grow window to the right", lazy.Layout("grow_right")),
		key(mods(mod, control), "Down", "Grow window down", lazy.Layout("grow_down")),
		key(mods(mod, control), "Up", "Grow window up", lazy.Layout("grow_up")),
		key(mods(mod), "n", "Reset all window sizes", lazy.Layout("normalize")),
		// Split shows every window of the stack; unsplit shows one, like the
		// max layout but with several stack panes.
		key(mods(mod, shift), "Return", "Toggle between split and unsplit sides of stack",
			lazy.Layout("toggle_split")),

		key(mods(alt, control), "t", "Launch terminal", lazy.Spawn(s.Terminal)),
		key(mods(mod), "Tab", "Toggle between groups", lazy.Screen("next_group")),
		key(mods(mod, shift), "Tab", "Toggle between layouts", lazy.Root("next_layout")),
		key(mods(mod), "w", "Kill focused window", lazy.Window("kill")),
		key(mods(mod), "f", "Toggle fullscreen on the focused window", lazy.Window("toggle_fullscreen")),
		key(mods(mod), "t", "Toggle floating on the focused window", lazy.Window("toggle_floating")),
		key(mods(mod, control), "r", "Reload the config", lazy.Root("reload_config")),
		key(mods(mod, shift), "r", "Restart the window manager", lazy.Root("restart")),
		key(mods(mod, control), "q", "Shutdown the window manager", lazy.Root("shutdown")),

		key(mods(alt), "Return", "Launch application launcher", lazy.Spawn(s.Launcher)),
		key(mods(mod), "Print", "Save fullscreen screenshot as a jpg",
			lazy.Spawn(fmt.Sprintf("sh -c 'grim -t jpeg %s/$(date +%%Y-%%m-%%d_%%H-%%m-%%s).jpg'", screenshotDir))),
		key(mods(), "Print", "Copy fullscreen screenshot to the clipboard",
			lazy.Spawn("sh -c 'grim - | wl-copy'")),
		key(mods(mod, shift), "s", "Take screenshot of selected area and save as a jpg",
			lazy.Spawn(fmt.Sprintf("sh -c '%s'", s.Screenshot))),
		key(mods(alt), "space", "Switch to next window and move that window above all other windows with similar priority",
			lazy.Window("move_to_top")),
	}
}

// nVTs is the number of virtual terminals reachable from the keyboard.
const nVTs = 7

// vtKeys switches virtual terminals. Only the Wayland backend can do that,
// and which backend runs is not known while the configuration is evaluated,
// so the check is made when the key is pressed.
func vtKeys() []Key {
	keys := make([]Key, 0, nVTs)
	for vt := 1; vt <= nVTs; vt++ {
		keys = append(keys, key(mods(control, "mod1"), fmt.Sprintf("f%d", vt),
			fmt.Sprintf("Switch to VT%d", vt),
			lazy.Core("change_vt", vt).When(lazy.OnBackend("wayland")),
		))
	}
	return keys
}

// groupKeys binds mod+name to switch to each group and mod+shift+name to move
// the focused window there without following it.
func groupKeys(s settings.Settings, groups []Group) []Key {
	keys := make([]Key, 0, 2*len(groups))
	for _, g := range groups {
		keys = append(keys,
			key(mods(s.Mod), g.Name, "Switch to group "+g.Name,
				lazy.Group(g.Name, "toscreen")),
			key(mods(s.Mod, shift), g.Name, "Move focused window to group "+g.Name,
				lazy.Window("togroup", g.Name).Kwarg("switch_group", false)),
		)
	}
	return keys
}
