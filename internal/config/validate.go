package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wmconf/wmconf/internal/keysym"
)

// ValidationError lists every problem Validate found.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Problems, "; "))
}

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Validate makes the checks the host would make when loading c: names
// resolve, chords and group names are unique, and group layouts exist.
func Validate(c *Config) error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for i, col := range c.Palette {
		if col == nil || !hexColor.MatchString(col.Hex) {
			addf("color %d is not six hex digits", i)
		}
	}

	layouts := map[string]bool{}
	for _, l := range c.Layouts {
		layouts[l.Name] = true
	}
	groups := map[string]bool{}
	for _, g := range c.Groups {
		switch {
		case g.Name == "":
			addf("group with empty name")
		case groups[g.Name]:
			addf("duplicate group %q", g.Name)
		}
		groups[g.Name] = true
		if !layouts[g.Layout] {
			addf("group %q uses unknown layout %q", g.Name, g.Layout)
		}
	}

	seen := map[keysym.Chord]string{}
	for _, k := range c.Keys {
		chord, err := keysym.Parse(k.Modifiers, k.Name)
		if err != nil {
			addf("key %q: %v", k.Desc, err)
			continue
		}
		if len(k.Commands) == 0 {
			addf("key %s has no commands", chord)
		}
		if prev, ok := seen[chord]; ok {
			addf("key %s bound twice: %q and %q", chord, prev, k.Desc)
			continue
		}
		seen[chord] = k.Desc
	}

	type buttonChord struct {
		mask   uint16
		button string
	}
	seenButtons := make(map[buttonChord]bool, len(c.Mouse))
	for _, m := range c.Mouse {
		mask, modErr := keysym.ModMask(m.Modifiers)
		if modErr != nil {
			addf("mouse %s: %v", m.Button, modErr)
		}
		_, btnErr := keysym.Button(m.Button)
		if btnErr != nil {
			addf("mouse: %v", btnErr)
		}
		if m.Kind == Drag && m.Start == nil {
			addf("mouse drag %s has no start command", m.Button)
		}
		if modErr != nil || btnErr != nil {
			continue
		}
		bc := buttonChord{mask, m.Button}
		if seenButtons[bc] {
			addf("mouse %s bound twice", strings.Join(append(keysym.ModNames(mask), m.Button), "+"))
			continue
		}
		seenButtons[bc] = true
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
