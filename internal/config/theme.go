package config

// Color is a 24-bit RGB color written as six hex digits, without a leading
// '#'. Layouts, bars and widgets hold *Color values taken from the Palette,
// so editing a palette entry recolors every consumer.
type Color struct {
	Hex string
}

// MarshalYAML renders c as its hex string.
func (c Color) MarshalYAML() (interface{}, error) { return c.Hex, nil }

// MarshalText renders c as its hex string.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex), nil }

// Palette is the theme's color list.
type Palette []*Color

// Palette indices, by role.
const (
	colorPink = iota
	colorMauve
	colorIndigo
	colorBlue
	colorNight
)

func newPalette() Palette {
	return Palette{
		colorPink:   {"de97b1"},
		colorMauve:  {"AE77AB"},
		colorIndigo: {"3A3073"},
		colorBlue:   {"3798CD"},
		colorNight:  {"1C1F50"},
	}
}

// LayoutDefaults are the visual parameters shared by the tiling layouts.
type LayoutDefaults struct {
	Margin       int    `yaml:"margin" json:"margin"`
	BorderFocus  *Color `yaml:"border_focus" json:"border_focus"`
	BorderNormal *Color `yaml:"border_normal" json:"border_normal"`
	BorderWidth  int    `yaml:"border_width" json:"border_width"`
}

func newLayoutDefaults(p Palette) *LayoutDefaults {
	return &LayoutDefaults{
		Margin:       5,
		BorderFocus:  p[colorBlue],
		BorderNormal: p[colorIndigo],
		BorderWidth:  3,
	}
}

// Decoration is a widget decoration drawn by the widget-extension library.
type Decoration struct {
	Kind string `yaml:"kind" json:"kind"`
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
}

// WidgetDefaults are the styling parameters every widget starts from.
type WidgetDefaults struct {
	Font        string       `yaml:"font" json:"font"`
	FontSize    int          `yaml:"fontsize" json:"fontsize"`
	Padding     int          `yaml:"padding" json:"padding"`
	Decorations []Decoration `yaml:"decorations" json:"decorations"`
}
