// Package keysym resolves the key, modifier and button names used in key and
// mouse bindings to their X11 values.
package keysym

// The keysym constants come from /usr/include/X11/keysymdef.h and
// /usr/include/X11/XF86keysym.h.

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

const (
	xkSpace            = 0x0020
	xkBackspace        = 0xff08
	xkTab              = 0xff09
	xkReturn           = 0xff0d
	xkEscape           = 0xff1b
	xkHome             = 0xff50
	xkLeft             = 0xff51
	xkUp               = 0xff52
	xkRight            = 0xff53
	xkDown             = 0xff54
	xkPageUp           = 0xff55
	xkPageDown         = 0xff56
	xkEnd              = 0xff57
	xkPrint            = 0xff61
	xkF1               = 0xffbe
	xkDelete           = 0xffff
	xkAudioLowerVolume = 0x1008ff11
	xkAudioMute        = 0x1008ff12
	xkAudioRaiseVolume = 0x1008ff13
)

var names = map[string]xp.Keysym{
	"space":                xkSpace,
	"exclam":               '!',
	"quotedbl":             '"',
	"numbersign":           '#',
	"dollar":               '$',
	"percent":              '%',
	"ampersand":            '&',
	"apostrophe":           '\'',
	"parenleft":            '(',
	"parenright":           ')',
	"asterisk":             '*',
	"plus":                 '+',
	"comma":                ',',
	"minus":                '-',
	"period":               '.',
	"slash":                '/',
	"colon":                ':',
	"semicolon":            ';',
	"less":                 '<',
	"equal":                '=',
	"greater":              '>',
	"question":             '?',
	"bracketleft":          '[',
	"backslash":            '\\',
	"bracketright":         ']',
	"grave":                '`',
	"BackSpace":            xkBackspace,
	"Tab":                  xkTab,
	"Return":               xkReturn,
	"Escape":               xkEscape,
	"Home":                 xkHome,
	"Left":                 xkLeft,
	"Up":                   xkUp,
	"Right":                xkRight,
	"Down":                 xkDown,
	"Page_Up":              xkPageUp,
	"Page_Down":            xkPageDown,
	"End":                  xkEnd,
	"Print":                xkPrint,
	"Delete":               xkDelete,
	"XF86AudioLowerVolume": xkAudioLowerVolume,
	"XF86AudioMute":        xkAudioMute,
	"XF86AudioRaiseVolume": xkAudioRaiseVolume,
}

// folded maps lower-cased names to keysyms, for names that are not found
// verbatim. Letters and digits are added by init.
var folded = map[string]xp.Keysym{}

// symNames is the reverse of names, used by String.
var symNames = map[xp.Keysym]string{}

func init() {
	for i := 0; i < 12; i++ {
		names[fmt.Sprintf("F%d", i+1)] = xp.Keysym(xkF1 + i)
	}
	for c := 'a'; c <= 'z'; c++ {
		names[string(c)] = xp.Keysym(c)
	}
	for c := '0'; c <= '9'; c++ {
		names[string(c)] = xp.Keysym(c)
	}
	for name, sym := range names {
		lower := strings.ToLower(name)
		if _, ok := names[lower]; !ok {
			folded[lower] = sym
		}
		symNames[sym] = name
	}
}

// Lookup returns the keysym for a key name such as "Return", "equal" or "f1".
// An exact match wins; otherwise the name is matched case-insensitively.
func Lookup(name string) (xp.Keysym, bool) {
	if sym, ok := names[name]; ok {
		return sym, true
	}
	lower := strings.ToLower(name)
	if sym, ok := names[lower]; ok {
		return sym, true
	}
	sym, ok := folded[lower]
	return sym, ok
}

// String returns the canonical name of keysym.
func String(keysym xp.Keysym) string {
	if name, ok := symNames[keysym]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", uint32(keysym))
}

// Names returns every known key name, sorted.
func Names() []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

var modifiers = []struct {
	name string
	mask uint16
}{
	{"shift", xp.ModMaskShift},
	{"lock", xp.ModMaskLock},
	{"control", xp.ModMaskControl},
	{"mod1", xp.ModMask1},
	{"mod2", xp.ModMask2},
	{"mod3", xp.ModMask3},
	{"mod4", xp.ModMask4},
	{"mod5", xp.ModMask5},
}

// ModMask ORs together the masks for the named modifiers. The names are
// the host's: "shift", "lock", "control" and "mod1" to "mod5".
func ModMask(mods []string) (uint16, error) {
	mask := uint16(0)
	for _, m := range mods {
		found := false
		for _, mod := range modifiers {
			if strings.EqualFold(m, mod.name) {
				mask |= mod.mask
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Errorf("unknown modifier %q", m)
		}
	}
	return mask, nil
}

// ModNames is the inverse of ModMask, in canonical order.
func ModNames(mask uint16) []string {
	var out []string
	for _, mod := range modifiers {
		if mask&mod.mask != 0 {
			out = append(out, mod.name)
		}
	}
	return out
}

// Button returns the X11 button index for names "Button1" to "Button5".
func Button(name string) (xp.Button, error) {
	rest, ok := strings.CutPrefix(name, "Button")
	if !ok || rest == "" || rest[0] < '0' || rest[0] > '9' {
		return 0, errors.Errorf("unknown button %q", name)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > 5 {
		return 0, errors.Errorf("unknown button %q", name)
	}
	return xp.Button(xp.ButtonIndex1 + n - 1), nil
}
