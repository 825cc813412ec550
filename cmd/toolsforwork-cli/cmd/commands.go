package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"toolsforwork/internal/adapters/memory"
	"toolsforwork/internal/application/commands"
	"toolsforwork/internal/domain"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the registered transformer commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := commands.NewRegistry(memory.NewHost(""), launcher, cfg)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCOMMAND\tTITLE\tSCRIPT")
		for _, t := range registry.Commands() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Name, t.ID, t.Title, cfg.ScriptPath(t.Script))
		}
		return w.Flush()
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every command is registered and runnable",
	Long: `Check the installation: every built-in command must be registered, the
interpreter must be on PATH and every transformer script must exist under
the installation root.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := commands.NewRegistry(memory.NewHost(""), launcher, cfg)
		out := cmd.OutOrStdout()
		failed := 0

		check := func(ok bool, format string, a ...any) {
			mark := "ok  "
			if !ok {
				mark = "FAIL"
				failed++
			}
			fmt.Fprintf(out, "[%s] %s\n", mark, fmt.Sprintf(format, a...))
		}

		for _, t := range domain.Transformers() {
			check(registry.Registered(t.ID), "command %s registered", t.ID)
		}

		if path, err := launcher.LookPath(cfg.Interpreter); err != nil {
			check(false, "interpreter %s: %v", cfg.Interpreter, err)
		} else {
			check(true, "interpreter %s (%s)", cfg.Interpreter, path)
		}

		for _, t := range registry.Commands() {
			script := cfg.ScriptPath(t.Script)
			_, err := os.Stat(script)
			check(err == nil, "script %s", script)
		}

		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(checkCmd)
}
