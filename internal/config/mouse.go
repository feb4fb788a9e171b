package config

import (
	"github.com/wmconf/wmconf/internal/lazy"
	"github.com/wmconf/wmconf/internal/settings"
)

// MouseKind tells drags from clicks.
type MouseKind string

const (
	Drag  MouseKind = "drag"
	Click MouseKind = "click"
)

// Mouse binds a modifier set and button. A drag runs Start once when the drag
// begins and Commands on every pointer motion; a click runs Commands.
type Mouse struct {
	Kind      MouseKind   `yaml:"kind" json:"kind"`
	Modifiers []string    `yaml:"modifiers" json:"modifiers"`
	Button    string      `yaml:"button" json:"button"`
	Commands  []lazy.Call `yaml:"commands" json:"commands"`
	Start     *lazy.Call  `yaml:"start,omitempty" json:"start,omitempty"`
}

func drag(m []string, button string, update, start lazy.Call) Mouse {
	return Mouse{Kind: Drag, Modifiers: m, Button: button, Commands: []lazy.Call{update}, Start: &start}
}

func click(m []string, button string, cmds ...lazy.Call) Mouse {
	return Mouse{Kind: Click, Modifiers: m, Button: button, Commands: cmds}
}

// newMouse binds the drags that move and resize floating windows.
func newMouse(s settings.Settings) []Mouse {
	return []Mouse{
		drag(mods(s.Mod), "Button1", lazy.Window("set_position_floating"), lazy.Window("get_position")),
		drag(mods(s.Mod), "Button3", lazy.Window("set_size_floating"), lazy.Window("get_size")),
		click(mods(s.Mod), "Button2", lazy.Window("bring_to_front")),
	}
}
