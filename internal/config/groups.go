package config

// Group is a workspace. Name is also the key that selects it.
type Group struct {
	Name   string `yaml:"name" json:"name"`
	Label  string `yaml:"label" json:"label"`
	Layout string `yaml:"layout" json:"layout"`
}

// groupLabel is the Nerd Font glyph the bar's group box shows for each group.
const groupLabel = "\uf111" // nf-fa-circle

var (
	groupNames   = [...]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	groupLayouts = [...]string{
		"monadtall", "floating", "monadtall", "floating", "monadtall",
		"floating", "monadtall", "floating", "monadtall",
	}
)

func newGroups() []Group {
	groups := make([]Group, len(groupNames))
	for i, name := range groupNames {
		groups[i] = Group{Name: name, Label: groupLabel, Layout: groupLayouts[i]}
	}
	return groups
}
