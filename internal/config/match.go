package config

// Window is what a float rule can see of a client window.
type Window struct {
	// Class is the WM_CLASS instance and class names.
	Class []string
	Title string
	// Type is the window type, such as "dialog" or "utility".
	Type       string
	Role       string
	FixedSize  bool
	FixedRatio bool
}

// Match is a float rule. Every non-empty field must match; a zero Match
// matches nothing.
type Match struct {
	WMClass string `yaml:"wm_class,omitempty" json:"wm_class,omitempty"`
	Title   string `yaml:"title,omitempty" json:"title,omitempty"`
	WMType  string `yaml:"wm_type,omitempty" json:"wm_type,omitempty"`
	Role    string `yaml:"role,omitempty" json:"role,omitempty"`
	// FuncName names Func in dumps.
	FuncName string            `yaml:"func,omitempty" json:"func,omitempty"`
	Func     func(Window) bool `yaml:"-" json:"-"`
}

// Matches reports whether w falls under the rule.
func (m Match) Matches(w Window) bool {
	if m.WMClass == "" && m.Title == "" && m.WMType == "" && m.Role == "" && m.Func == nil {
		return false
	}
	if m.WMClass != "" && !contains(w.Class, m.WMClass) {
		return false
	}
	if m.Title != "" && m.Title != w.Title {
		return false
	}
	if m.WMType != "" && m.WMType != w.Type {
		return false
	}
	if m.Role != "" && m.Role != w.Role {
		return false
	}
	if m.Func != nil && !m.Func(w) {
		return false
	}
	return true
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// DefaultFloatRules are the host's built-in float rules: dialogs, utility
// and splash windows, and windows that cannot be resized.
func DefaultFloatRules() []Match {
	var rules []Match
	for _, t := range []string{"utility", "notification", "toolbar", "splash", "dialog"} {
		rules = append(rules, Match{WMType: t})
	}
	for _, c := range []string{"file_progress", "confirm", "dialog", "download", "error", "notification", "splash", "toolbar"} {
		rules = append(rules, Match{WMClass: c})
	}
	rules = append(rules,
		Match{FuncName: "has_fixed_size", Func: func(w Window) bool { return w.FixedSize }},
		Match{FuncName: "has_fixed_ratio", Func: func(w Window) bool { return w.FixedRatio }},
	)
	return rules
}

// Floats reports whether any of the rules forces w to float.
func Floats(rules []Match, w Window) bool {
	for _, m := range rules {
		if m.Matches(w) {
			return true
		}
	}
	return false
}
