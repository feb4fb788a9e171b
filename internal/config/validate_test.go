package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmconf/wmconf/internal/lazy"
	"github.com/wmconf/wmconf/internal/settings"
)

func TestValidateDefault(t *testing.T) {
	assert.NoError(t, Validate(Load(settings.Defaults())))
}

func TestValidateProblems(t *testing.T) {
	c := Load(settings.Defaults())
	c.Palette[0].Hex = "#de97b1"
	c.Groups = append(c.Groups, Group{Name: "1", Layout: "treetab"})
	c.Keys = append(c.Keys,
		Key{Modifiers: []string{"mod4"}, Name: "w", Desc: "again", Commands: []lazy.Call{lazy.Window("kill")}},
		Key{Modifiers: []string{"hyper"}, Name: "x", Desc: "bad mod", Commands: []lazy.Call{lazy.Window("kill")}},
		Key{Modifiers: []string{"mod4"}, Name: "F13", Desc: "bad key"},
	)
	c.Mouse = append(c.Mouse, Mouse{Kind: Click, Button: "Button9"})

	err := Validate(c)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 7)
	assert.Contains(t, err.Error(), "color 0 is not six hex digits")
	assert.Contains(t, err.Error(), `duplicate group "1"`)
	assert.Contains(t, err.Error(), `unknown layout "treetab"`)
	assert.Contains(t, err.Error(), `key mod4+w bound twice: "Kill focused window" and "again"`)
	assert.Contains(t, err.Error(), `unknown modifier "hyper"`)
	assert.Contains(t, err.Error(), `unknown key "F13"`)
	assert.Contains(t, err.Error(), `unknown button "Button9"`)
}

func TestValidateDragWithoutStart(t *testing.T) {
	c := Load(settings.Defaults())
	c.Mouse[0].Start = nil
	assert.ErrorContains(t, Validate(c), "has no start command")
}

func TestValidateDuplicateMouse(t *testing.T) {
	c := Load(settings.Defaults())
	c.Mouse = append(c.Mouse, Mouse{
		Kind:      Click,
		Modifiers: []string{"mod4"},
		Button:    "Button2",
		Commands:  []lazy.Call{lazy.Window("kill")},
	})
	assert.ErrorContains(t, Validate(c), "mouse mod4+Button2 bound twice")
}
