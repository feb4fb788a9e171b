package keysym

import (
	"strings"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// Chord is a modifier mask plus a keysym: what a key press reports and what a
// key binding is grabbed on.
type Chord struct {
	Mask   uint16
	Keysym xp.Keysym
}

// Parse resolves a binding's modifier and key names.
func Parse(mods []string, name string) (Chord, error) {
	mask, err := ModMask(mods)
	if err != nil {
		return Chord{}, err
	}
	sym, ok := Lookup(name)
	if !ok {
		return Chord{}, errors.Errorf("unknown key %q", name)
	}
	return Chord{Mask: mask, Keysym: sym}, nil
}

// ParseChord parses the "mod4+shift+Return" form. The last element is the
// key; a lone "+" names the plus key.
func ParseChord(s string) (Chord, error) {
	if s == "" {
		return Chord{}, errors.New("empty chord")
	}
	if s == "+" || strings.HasSuffix(s, "++") {
		mods := strings.TrimSuffix(strings.TrimSuffix(s, "+"), "+")
		var parts []string
		if mods != "" {
			parts = strings.Split(mods, "+")
		}
		return Parse(parts, "plus")
	}
	parts := strings.Split(s, "+")
	return Parse(parts[:len(parts)-1], parts[len(parts)-1])
}

func (c Chord) String() string {
	parts := append(ModNames(c.Mask), String(c.Keysym))
	return strings.Join(parts, "+")
}
