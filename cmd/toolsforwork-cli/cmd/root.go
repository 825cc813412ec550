package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"toolsforwork/internal/adapters/process"
	"toolsforwork/internal/config"
	"toolsforwork/internal/logging"
	"toolsforwork/internal/ports"
)

var (
	rootFlag     string
	pythonFlag   string
	logLevelFlag string
	plainFlag    bool

	cfg      config.Config
	launcher ports.Launcher
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "toolsforwork-cli",
	Short: "Run TypeScript source transformers from the command line",
	Long: `toolsforwork-cli runs the external transformer scripts shipped with
toolsforwork against a single .ts or .tsx file.

Each transformer is a Python script resolved under <root>/python and run as
"python -X utf8 <script> <file>". On success the file has been rewritten in
place and the script's output is printed.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLogFile()
	},
}

func setup(cmd *cobra.Command) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("python") {
		loaded.Interpreter = pythonFlag
	}
	// the CLI is quieter than the other hosts unless asked otherwise
	if cmd.Flags().Changed("log-level") || os.Getenv("TOOLSFORWORK_LOG_LEVEL") == "" {
		loaded.LogLevel = logLevelFlag
	}
	if rootFlag != "" {
		if loaded, err = loaded.WithRoot(rootFlag); err != nil {
			return err
		}
	}

	level, err := logging.ParseLevel(loaded.LogLevel)
	if err != nil {
		return err
	}
	if err := closeLogFile(); err != nil {
		return err
	}
	logOut, closeFn, err := logging.OpenFile(loaded.LogFile)
	if err != nil {
		return err
	}
	closeLog = closeFn
	if loaded.LogFile == "" {
		logOut = cmd.ErrOrStderr()
	}
	logging.Init(level, loaded.LogFormat, logOut)

	cfg = loaded
	launcher = process.NewLauncher(process.WithLogger(logging.New("launcher")))
	return nil
}

// closeLogFile releases the log file opened by setup, if any. RunE errors
// skip PersistentPostRunE, so Execute calls it as well.
func closeLogFile() error {
	if closeLog == nil {
		return nil
	}
	err := closeLog()
	closeLog = nil
	return err
}

// reportedError marks a failure the host has already shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	if cerr := closeLogFile(); cerr != nil {
		fmt.Fprintln(os.Stderr, cerr)
	}
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "installation root containing the transformer scripts (default: $TOOLSFORWORK_ROOT or the binary's directory)")
	rootCmd.PersistentFlags().StringVar(&pythonFlag, "python", config.DefaultInterpreter, "interpreter used to run the transformers")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "disable colored output")
}
