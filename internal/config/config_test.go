package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmconf/wmconf/internal/hook"
	"github.com/wmconf/wmconf/internal/settings"
	"gopkg.in/yaml.v3"
)

type runtime struct {
	layout  string
	backend string
}

func (r runtime) CurrentLayout() string { return r.layout }
func (r runtime) Backend() string       { return r.backend }

func load(t *testing.T) *Config {
	t.Helper()
	return Load(settings.Defaults())
}

func TestKeyCount(t *testing.T) {
	c := load(t)
	base := len(baseKeys(settings.Defaults()))
	assert.Equal(t, 31, base)
	assert.Len(t, c.Keys, base+7+2*9)
}

func TestGroups(t *testing.T) {
	c := load(t)
	require.Len(t, c.Groups, 9)
	for i, g := range c.Groups {
		assert.Equal(t, fmt.Sprint(i+1), g.Name)
		want := "monadtall"
		if i%2 == 1 {
			want = "floating"
		}
		assert.Equal(t, want, g.Layout, g.Name)
		assert.NotEmpty(t, g.Label)
	}
}

func TestGroupKeys(t *testing.T) {
	c := load(t)
	for _, g := range c.Groups {
		var refs []Key
		for _, k := range c.Keys {
			for _, cmd := range k.Commands {
				if cmd.Selector() == g.Name ||
					(cmd.Method() == "togroup" && len(cmd.Args()) == 1 && cmd.Args()[0] == g.Name) {
					refs = append(refs, k)
				}
			}
		}
		require.Len(t, refs, 2, "group %s", g.Name)

		assert.Equal(t, []string{"mod4"}, refs[0].Modifiers)
		assert.Equal(t, g.Name, refs[0].Name)
		assert.Equal(t, "toscreen", refs[0].Commands[0].Method())

		assert.Equal(t, []string{"mod4", "shift"}, refs[1].Modifiers)
		assert.Equal(t, g.Name, refs[1].Name)
		sw, ok := refs[1].Commands[0].KwargValue("switch_group")
		require.True(t, ok)
		assert.Equal(t, false, sw)
	}
}

func TestVTKeys(t *testing.T) {
	keys := vtKeys()
	require.Len(t, keys, 7)
	seen := map[string]bool{}
	for i, k := range keys {
		assert.Equal(t, fmt.Sprintf("f%d", i+1), k.Name)
		assert.Equal(t, fmt.Sprintf("Switch to VT%d", i+1), k.Desc)
		assert.Equal(t, []string{"control", "mod1"}, k.Modifiers)
		assert.False(t, seen[k.Name])
		seen[k.Name] = true

		require.Len(t, k.Commands, 1)
		cmd := k.Commands[0]
		assert.Equal(t, []any{i + 1}, cmd.Args())
		assert.True(t, cmd.Check(runtime{backend: "wayland"}))
		assert.False(t, cmd.Check(runtime{backend: "x11"}))
	}
}

func TestConditionalKeys(t *testing.T) {
	c := load(t)
	var equal Key
	for _, k := range c.Keys {
		if k.Name == "equal" {
			equal = k
		}
	}
	require.Len(t, equal.Commands, 2)
	assert.True(t, equal.Commands[0].Check(runtime{layout: "columns"}))
	assert.False(t, equal.Commands[0].Check(runtime{layout: "monadtall"}))
	assert.True(t, equal.Commands[1].Check(runtime{layout: "monadtall"}))
}

func TestSettingsFlowIntoKeys(t *testing.T) {
	s := settings.Defaults()
	s.Mod = "mod1"
	s.AltMod = "mod4"
	s.Terminal = "foot"
	c := Load(s)

	assert.Equal(t, []string{"mod1"}, c.Keys[0].Modifiers)
	assert.Equal(t, []string{"mod1"}, c.Mouse[0].Modifiers)
	var found bool
	for _, k := range c.Keys {
		if k.Desc == "Launch terminal" {
			found = true
			assert.Equal(t, []string{"mod4", "control"}, k.Modifiers)
			assert.Equal(t, `spawn("foot")`, k.Commands[0].String())
		}
	}
	assert.True(t, found)
}

func TestThemeIsShared(t *testing.T) {
	c := load(t)
	c.Palette[colorBlue].Hex = "ffffff"
	c.Palette[colorNight].Hex = "000000"

	assert.Equal(t, "ffffff", c.LayoutDefaults.BorderFocus.Hex)
	for _, l := range c.Layouts {
		assert.Same(t, c.LayoutDefaults, l.Defaults, l.Name)
		assert.Equal(t, "ffffff", l.Defaults.BorderFocus.Hex)
	}
	assert.Equal(t, "ffffff", c.FloatingLayout.Defaults.BorderFocus.Hex)

	bar := c.Screens[0].Top
	assert.Equal(t, "000000", bar.Background.Hex)
	for _, w := range bar.Widgets {
		if w.Kind == "GroupBox" {
			assert.Same(t, c.Palette[colorBlue], w.Options["this_screen_border"])
			assert.Same(t, c.Palette[colorBlue], w.Options["this_current_screen_border"])
		}
		assert.Same(t, c.WidgetDefaults, w.Defaults, w.Kind)
		if w.Background != nil {
			shared := false
			for _, col := range c.Palette {
				shared = shared || col == w.Background
			}
			assert.True(t, shared, "%s background is not a palette entry", w.Kind)
		}
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	a, b := load(t), load(t)

	assert.Empty(t, cmp.Diff(a.Groups, b.Groups))

	ka, err := yaml.Marshal(a.Keys)
	require.NoError(t, err)
	kb, err := yaml.Marshal(b.Keys)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(string(ka), string(kb)))

	assert.NotSame(t, a.Palette[0], b.Palette[0], "loads must not share state")
	assert.NotSame(t, a.LayoutDefaults, b.LayoutDefaults)
}

func TestBar(t *testing.T) {
	c := load(t)
	require.Len(t, c.Screens, 1)
	bar := c.Screens[0].Top
	require.NotNil(t, bar)
	assert.Equal(t, 36, bar.Size)
	assert.Equal(t, [4]int{6, 75, 3, 75}, bar.Margin)

	var kinds []string
	for _, w := range bar.Widgets {
		kinds = append(kinds, w.Kind)
	}
	assert.Equal(t, []string{
		"Spacer", "Chord", "GroupBox", "CurrentLayout", "WindowName", "Spacer",
		"Memory", "UPowerWidget", "Clock", "StatusNotifier", "QuickExit",
	}, kinds)

	chord := bar.Widgets[1]
	require.NotNil(t, chord.Transform)
	assert.Equal(t, "LAUNCH", chord.Transform("launch"))

	assert.Equal(t, c.WidgetDefaults.Decorations, c.ExtensionDefaults.Decorations)
	assert.NotSame(t, c.WidgetDefaults, &c.ExtensionDefaults)
}

func TestLayouts(t *testing.T) {
	c := load(t)
	var names []string
	for _, l := range c.Layouts {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"monadtall", "max", "floating"}, names)
	assert.Equal(t, 4, c.Layouts[0].SingleBorderWidth)
	assert.Equal(t, 5, c.LayoutDefaults.Margin)
	assert.Equal(t, 3, c.LayoutDefaults.BorderWidth)
	assert.Equal(t, 4, c.FloatingLayout.Defaults.BorderWidth)
}

func TestFloatRules(t *testing.T) {
	rules := load(t).FloatingLayout.FloatRules
	assert.Len(t, rules, len(DefaultFloatRules())+7)

	tests := []struct {
		name string
		w    Window
		want bool
	}{
		{"pavucontrol", Window{Class: []string{"pavucontrol", "Pavucontrol"}}, true},
		{"pinentry", Window{Title: "pinentry"}, true},
		{"dialog type", Window{Type: "dialog"}, true},
		{"fixed size", Window{FixedSize: true}, true},
		{"gitk branch", Window{Class: []string{"makebranch"}}, true},
		{"terminal", Window{Class: []string{"kitty"}, Title: "zsh", Type: "normal"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Floats(rules, tt.w))
		})
	}
	assert.False(t, Match{}.Matches(Window{}))
}

func TestFlags(t *testing.T) {
	c := load(t)
	assert.False(t, c.FollowMouseFocus)
	assert.False(t, c.BringFrontClick)
	assert.True(t, c.FloatsKeptAbove)
	assert.False(t, c.CursorWarp)
	assert.True(t, c.AutoFullscreen)
	assert.Equal(t, "smart", c.FocusOnWindowActivation)
	assert.True(t, c.ReconfigureScreens)
	assert.True(t, c.AutoMinimize)
	assert.Nil(t, c.DGroupsKeyBinder)
	assert.Empty(t, c.DGroupsAppRules)
	assert.Equal(t, InputConfig{AccelProfile: "flat"}, c.WLInputRules["type:pointer"])
	assert.Equal(t, InputConfig{KbLayout: "gb"}, c.WLInputRules["type:keyboard"])
	assert.Equal(t, "breeze_cursors", c.WLXCursorTheme)
	assert.Equal(t, 24, c.WLXCursorSize)
	assert.Equal(t, "LG3D", c.WMName)
}

func TestStartupHook(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "ran")
	script := filepath.Join(dir, "autostart.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\ntouch "+marker+"\n"), 0o755))

	s := settings.Defaults()
	s.Autostart = script
	c := Load(s)
	assert.Equal(t, 1, c.Hooks.Count(hook.Startup))
	assert.NoFileExists(t, marker, "loading must not run the script")

	assert.Zero(t, c.Hooks.Fire(context.Background(), hook.Startup))
	assert.FileExists(t, marker)
}

func TestDump(t *testing.T) {
	out, err := yaml.Marshal(load(t))
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "LG3D", back["wmname"])
	assert.Len(t, back["keys"], 56)
	colors, ok := back["colors"].([]any)
	require.True(t, ok)
	assert.Equal(t, "3798CD", colors[colorBlue])
}
