package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/wmconf/wmconf/internal/hook"
)

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Run the startup hooks",
	Long:  "Fire the startup event, which runs the autostart script once and waits for it, then the startup_complete event.",
	Args:  cobra.NoArgs,
	RunE:  runAutostart,
}

func init() {
	rootCmd.AddCommand(autostartCmd)
}

func runAutostart(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	failed := c.Hooks.Fire(cmd.Context(), hook.Startup)
	failed += c.Hooks.Fire(cmd.Context(), hook.StartupComplete)
	if failed > 0 {
		return errors.Errorf("%d startup hook(s) failed", failed)
	}
	return nil
}
