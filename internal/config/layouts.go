package config

// Layout selects one of the host's tiling strategies and parametrizes it.
type Layout struct {
	Name     string          `yaml:"name" json:"name"`
	Defaults *LayoutDefaults `yaml:"defaults" json:"defaults"`
	// SingleBorderWidth is the border width when only one window is shown.
	// Zero leaves the host default.
	SingleBorderWidth int `yaml:"single_border_width,omitempty" json:"single_border_width,omitempty"`
	// FloatRules is only set on the floating layout.
	FloatRules []Match `yaml:"float_rules,omitempty" json:"float_rules,omitempty"`
}

// newLayouts returns the layouts in the order the next_layout command cycles
// through them. They all share defaults.
func newLayouts(defaults *LayoutDefaults) []Layout {
	return []Layout{
		{Name: "monadtall", Defaults: defaults, SingleBorderWidth: 4},
		{Name: "max", Defaults: defaults},
		{Name: "floating", Defaults: defaults},
	}
}

// newFloatingLayout returns the layout used for floating windows in every
// group. Its borders are wider than the tiled ones but use the same colors.
func newFloatingLayout(p Palette) Layout {
	rules := append(DefaultFloatRules(),
		// Run xprop to see the WM_CLASS and WM_NAME of an X client.
		Match{WMClass: "confirmreset"}, // gitk
		Match{WMClass: "makebranch"},   // gitk
		Match{WMClass: "maketag"},      // gitk
		Match{WMClass: "ssh-askpass"},  // ssh-askpass
		Match{WMClass: "pavucontrol"},
		Match{Title: "branchdialog"}, // gitk
		Match{Title: "pinentry"},     // GPG key password entry
	)
	return Layout{
		Name: "floating",
		Defaults: &LayoutDefaults{
			BorderFocus:  p[colorBlue],
			BorderNormal: p[colorIndigo],
			BorderWidth:  4,
		},
		FloatRules: rules,
	}
}
