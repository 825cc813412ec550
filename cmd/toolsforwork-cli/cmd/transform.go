package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"toolsforwork/internal/adapters/terminal"
	"toolsforwork/internal/application"
	"toolsforwork/internal/application/commands"
	"toolsforwork/internal/domain"
)

// newTransformCmd builds the subcommand for one transformer, e.g.
// "toolsforwork-cli enum src/colors.ts"
func newTransformCmd(t domain.Transformer) *cobra.Command {
	return &cobra.Command{
		Use:   t.Name + " <file>",
		Short: fmt.Sprintf("Run the %s on a .ts or .tsx file", t.Title),
		Long: fmt.Sprintf(`Run the %s (%s) on a TypeScript file.

The file is rewritten in place. The script's standard output is printed
under the "%s" panel on success; on failure its standard error and
output are printed under "%s".

Examples:
  toolsforwork-cli %s src/colors.ts
  toolsforwork-cli %s --root /opt/toolsforwork src/App.tsx`,
			t.Title, t.Script, t.OutputPanel(), t.ErrorPanel(), t.Name, t.Name),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, t.ID, args[0])
		},
	}
}

func runTransform(cmd *cobra.Command, id domain.CommandID, path string) error {
	var opts []terminal.Option
	if plainFlag {
		opts = append(opts, terminal.WithPlainText())
	}
	host := terminal.NewHost(path, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts...)
	registry := commands.NewRegistry(host, launcher, cfg)

	_, err := registry.Execute(cmd.Context(), id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, application.ErrUnsupportedFileType):
		// a warning, not a failure
		return nil
	case errors.Is(err, application.ErrUnknownCommand):
		return err
	default:
		return &reportedError{err: err}
	}
}

func init() {
	for _, t := range domain.Transformers() {
		rootCmd.AddCommand(newTransformCmd(t))
	}
}
