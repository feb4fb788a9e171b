package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/wmconf/wmconf/internal/dispatch"
	"github.com/wmconf/wmconf/internal/keysym"
	"github.com/wmconf/wmconf/internal/lazy"
)

var pressCmd = &cobra.Command{
	Use:   "press CHORD",
	Short: "Show which commands a key press would run",
	Long: `Resolve a chord such as "mod4+shift+Return" against the key bindings and print
the commands that pass their guards for the given layout and backend. Without
--backend, the backend is detected from the session environment.`,
	Args: cobra.ExactArgs(1),
	RunE: runPress,
}

var clickCmd = &cobra.Command{
	Use:   "click CHORD",
	Short: "Show which commands a mouse press would run",
	Long:  `Resolve a chord such as "mod4+Button1" against the mouse bindings.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(pressCmd, clickCmd)
	pressCmd.Flags().String("layout", "monadtall", "Current layout name")
	pressCmd.Flags().String("backend", "", "Backend name (wayland, x11)")
}

// printExecutor prints commands instead of running them.
type printExecutor struct {
	w io.Writer
}

func (p printExecutor) Execute(_ context.Context, call lazy.Call) error {
	_, err := fmt.Fprintln(p.w, call.String())
	return err
}

func newDispatcher(cmd *cobra.Command) (*dispatch.Dispatcher, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, err
	}
	table, err := dispatch.NewTable(c.Keys, c.Mouse)
	if err != nil {
		return nil, err
	}
	return dispatch.NewDispatcher(table, printExecutor{cmd.OutOrStdout()}), nil
}

func runPress(cmd *cobra.Command, args []string) error {
	chord, err := keysym.ParseChord(args[0])
	if err != nil {
		return err
	}
	d, err := newDispatcher(cmd)
	if err != nil {
		return err
	}
	layout, _ := cmd.Flags().GetString("layout")
	backend, _ := cmd.Flags().GetString("backend")
	var rt lazy.Runtime = dispatch.EnvSession{Layout: layout}
	if backend != "" {
		rt = dispatch.Session{Layout: layout, BackendName: backend}
	}

	n, err := d.Press(cmd.Context(), chord, rt)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no command runs for %s on layout %s, backend %s\n",
			chord, rt.CurrentLayout(), rt.Backend())
	}
	return nil
}

func runClick(cmd *cobra.Command, args []string) error {
	parts := strings.Split(args[0], "+")
	mask, err := keysym.ModMask(parts[:len(parts)-1])
	if err != nil {
		return err
	}
	button, err := keysym.Button(parts[len(parts)-1])
	if err != nil {
		return err
	}
	d, err := newDispatcher(cmd)
	if err != nil {
		return err
	}
	return errors.Wrap(d.Click(cmd.Context(), mask, button), args[0])
}
