package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/wmconf/wmconf/internal/config"
	"github.com/wmconf/wmconf/internal/output"
)

var dumpCmd = &cobra.Command{
	Use:       "dump [section]",
	Short:     "Print the evaluated configuration",
	Long:      "Print the whole evaluated configuration, or one section of it: keys, groups, layouts, floating_layout, screens, mouse or colors.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"keys", "groups", "layouts", "floating_layout", "screens", "mouse", "colors"},
	RunE:      runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func section(c *config.Config, name string) (interface{}, error) {
	switch name {
	case "":
		return c, nil
	case "keys":
		return c.Keys, nil
	case "groups":
		return c.Groups, nil
	case "layouts":
		return c.Layouts, nil
	case "floating_layout":
		return c.FloatingLayout, nil
	case "screens":
		return c.Screens, nil
	case "mouse":
		return c.Mouse, nil
	case "colors":
		return c.Palette, nil
	}
	return nil, errors.Errorf("unknown section %q", name)
}

func runDump(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	v, err := section(c, name)
	if err != nil {
		return err
	}
	return output.Print(cmd.OutOrStdout(), outputFormat, v)
}
