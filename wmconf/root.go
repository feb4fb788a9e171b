package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/wmconf/wmconf/internal/config"
	wmlog "github.com/wmconf/wmconf/internal/log"
	"github.com/wmconf/wmconf/internal/output"
	"github.com/wmconf/wmconf/internal/settings"
)

var rootCmd = &cobra.Command{
	Use:           "wmconf",
	Short:         "Inspect and exercise the window manager configuration",
	Long:          "wmconf evaluates the tiling window manager configuration and lets you dump, validate and simulate it.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	settingsFlag string
	formatFlag   string
	logLevelFlag string

	outputFormat output.Format
)

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "Settings file (default $XDG_CONFIG_HOME/wmconf/settings.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "yaml", "Output format: yaml or json")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		wmlog.Configure(wmlog.Config{Level: logLevelFlag})
		f, err := output.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		outputFormat = f
		l := wmlog.Base()
		l.Debug().
			Str("event", "cli.start").
			Str("command", cmd.Name()).
			Str("settings", settingsPath()).
			Msg("running command")
		return nil
	}
}

// settingsPath returns the --settings flag, or the default settings file if
// it exists.
func settingsPath() string {
	if settingsFlag != "" {
		return settingsFlag
	}
	p := settings.DefaultPath()
	if p == "" {
		return ""
	}
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// loadConfig evaluates the configuration from the current settings.
func loadConfig() (*config.Config, error) {
	s, err := settings.Load(settingsPath())
	if err != nil {
		return nil, errors.Wrap(err, "load settings")
	}
	return config.Load(s), nil
}
