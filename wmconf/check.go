package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wmconf/wmconf/internal/config"
	"github.com/wmconf/wmconf/internal/dispatch"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long:  "Evaluate the configuration and check that every name resolves and no chord or group is defined twice.",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Validate(c); err != nil {
		return err
	}
	table, err := dispatch.NewTable(c.Keys, c.Mouse)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d keys, %d groups, %d layouts, %d mouse bindings\n",
		table.Len(), len(c.Groups), len(c.Layouts), len(c.Mouse))
	return nil
}
