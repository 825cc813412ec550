package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"toolsforwork/internal/config"
)

// resetFlags puts every persistent flag back to its default so each run
// starts from a clean root command
func resetFlags(t *testing.T) {
	t.Helper()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("reset --%s: %v", f.Name, err)
		}
		f.Changed = false
	})
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t)
	t.Cleanup(func() { _ = closeLogFile() })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTransform_UnsupportedFileIsNotAnError(t *testing.T) {
	root := t.TempDir()

	_, stderr, err := run(t, "enum", "--plain", "--root", root, "colors.js")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := "WARNING Enum Updater: This command only works with TypeScript files (.ts, .tsx)"
	if !strings.Contains(stderr, want) {
		t.Errorf("stderr = %q, want it to contain %q", stderr, want)
	}
}

func TestTransform_MissingScriptIsReported(t *testing.T) {
	root := t.TempDir()

	_, stderr, err := run(t, "import", "--plain", "--root", root, "colors.ts")
	var reported *reportedError
	if !errors.As(err, &reported) {
		t.Fatalf("Execute() error = %v, want reportedError", err)
	}
	want := "ERROR Import Updater: Transformer script not found: " + filepath.Join(root, "python", "import_updater.py")
	if !strings.Contains(stderr, want) {
		t.Errorf("stderr = %q, want it to contain %q", stderr, want)
	}
}

func TestCommands_ListsCatalog(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := run(t, "commands", "--root", root)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"toolsforwork.update-enum", "toolsforwork.update-import", filepath.Join(root, "python", "enum_updater.py")} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestCheck_ReportsMissingScripts(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "python")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "enum_updater.py"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := run(t, "check", "--root", root, "--python", "toolsforwork-no-such-python")
	if err == nil {
		t.Fatal("Execute() error = nil, want failed checks")
	}
	for _, want := range []string{
		"[ok  ] command toolsforwork.update-enum registered",
		"[FAIL] interpreter toolsforwork-no-such-python",
		"[ok  ] script " + filepath.Join(dir, "enum_updater.py"),
		"[FAIL] script " + filepath.Join(dir, "import_updater.py"),
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestRun_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	root := t.TempDir()

	if _, _, err := run(t, "commands", "--root", root, "--python", "python3.12", "--plain"); err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if cfg.Interpreter != "python3.12" || !plainFlag {
		t.Fatalf("first run: interpreter = %q, plain = %v", cfg.Interpreter, plainFlag)
	}

	t.Setenv("TOOLSFORWORK_PYTHON", "")
	if _, _, err := run(t, "commands", "--root", root); err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if cfg.Interpreter != config.DefaultInterpreter {
		t.Errorf("second run interpreter = %q, want %q", cfg.Interpreter, config.DefaultInterpreter)
	}
	if plainFlag {
		t.Error("second run plain = true, want false")
	}
}

func TestRun_ClosesLogFile(t *testing.T) {
	root := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "toolsforwork.log")
	t.Setenv("TOOLSFORWORK_LOG_FILE", logPath)
	t.Setenv("TOOLSFORWORK_LOG_LEVEL", "debug")

	if _, _, err := run(t, "commands", "--root", root); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if closeLog != nil {
		t.Error("log file still open after a successful run")
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "command registered") {
		t.Errorf("log file missing registry records:\n%s", data)
	}
}

func TestRun_FailedRunLeavesLogFileForExecute(t *testing.T) {
	root := t.TempDir()
	t.Setenv("TOOLSFORWORK_LOG_FILE", filepath.Join(t.TempDir(), "toolsforwork.log"))

	if _, _, err := run(t, "import", "--plain", "--root", root, "colors.ts"); err == nil {
		t.Fatal("Execute() error = nil, want missing script")
	}
	if closeLog == nil {
		t.Fatal("log file closed before Execute could release it")
	}
	if err := closeLogFile(); err != nil {
		t.Fatalf("closeLogFile() error = %v", err)
	}
	if closeLog != nil {
		t.Error("closeLogFile() left the handle set")
	}
}
