package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wmconf/wmconf/internal/config"
	"github.com/wmconf/wmconf/internal/keysym"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the key bindings",
	Long:  "List every key binding with its chord, commands and description, in binding order.",
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().String("grep", "", "Only show bindings whose description contains this text")
	keysCmd.Flags().Bool("conditional", false, "Only show bindings with a guarded command")
	keysCmd.Flags().Bool("names", false, "List the key names bindings may use instead")
}

func runKeys(cmd *cobra.Command, args []string) error {
	if all, _ := cmd.Flags().GetBool("names"); all {
		for _, name := range keysym.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}
	c, err := loadConfig()
	if err != nil {
		return err
	}
	grep, _ := cmd.Flags().GetString("grep")
	conditional, _ := cmd.Flags().GetBool("conditional")

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CHORD\tCOMMANDS\tDESCRIPTION")
	for _, k := range c.Keys {
		if grep != "" && !strings.Contains(strings.ToLower(k.Desc), strings.ToLower(grep)) {
			continue
		}
		if conditional && !guarded(k) {
			continue
		}
		chord := strings.Join(append(append([]string(nil), k.Modifiers...), k.Name), "+")
		if parsed, err := keysym.Parse(k.Modifiers, k.Name); err == nil {
			chord = parsed.String()
		}
		cmds := make([]string, len(k.Commands))
		for i, call := range k.Commands {
			cmds[i] = call.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", chord, strings.Join(cmds, " | "), k.Desc)
	}
	return tw.Flush()
}

func guarded(k config.Key) bool {
	for _, call := range k.Commands {
		if call.Conditional() {
			return true
		}
	}
	return false
}
