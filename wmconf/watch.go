package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/wmconf/wmconf/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-evaluate the configuration whenever the settings file changes",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := settingsPath()
	if path == "" {
		return errors.New("no settings file to watch; pass --settings")
	}
	c, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Validate(c); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := config.NewHolder(c, path)
	updates := make(chan *config.Config, 1)
	h.Subscribe(updates)
	if err := h.StartWatcher(ctx); err != nil {
		return err
	}
	defer h.Stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "watching %s\n", path)
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case next := <-updates:
			fmt.Fprintf(out, "reloaded: %d keys, %d groups\n", len(next.Keys), len(next.Groups))
		}
	}
}
