package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultInterpreter = "python"
	DefaultScriptDir   = "python"
)

// DefaultInterpreterFlags forces UTF-8 mode on the interpreter
var DefaultInterpreterFlags = []string{"-X", "utf8"}

// Config is the process-wide configuration. It is built once at startup and
// passed by value.
type Config struct {
	// Root is the installation root the transformer scripts are resolved
	// against. Defaults to the directory of the running executable.
	Root             string   `env:"TOOLSFORWORK_ROOT"`
	Interpreter      string   `env:"TOOLSFORWORK_PYTHON"       envDefault:"python"`
	InterpreterFlags []string `env:"TOOLSFORWORK_PYTHON_FLAGS" envDefault:"-X utf8" envSeparator:" "`
	ScriptDir        string   `env:"TOOLSFORWORK_SCRIPT_DIR"   envDefault:"python"`

	LogLevel  string `env:"TOOLSFORWORK_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"TOOLSFORWORK_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"TOOLSFORWORK_LOG_FILE"`
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() (Config, error) {
	if c.Interpreter == "" {
		c.Interpreter = DefaultInterpreter
	}
	if c.ScriptDir == "" {
		c.ScriptDir = DefaultScriptDir
	}
	var flags []string
	for _, f := range c.InterpreterFlags {
		if f != "" {
			flags = append(flags, f)
		}
	}
	if len(flags) == 0 {
		flags = append(flags, DefaultInterpreterFlags...)
	}
	c.InterpreterFlags = flags
	if c.Root == "" {
		root, err := ExecutableRoot()
		if err != nil {
			return Config{}, err
		}
		c.Root = root
	}
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return Config{}, fmt.Errorf("resolve root %s: %w", c.Root, err)
	}
	c.Root = root
	return c, nil
}

// WithRoot returns a copy of the config using root as the installation root
func (c Config) WithRoot(root string) (Config, error) {
	c.Root = root
	return c.withDefaults()
}

// ScriptPath returns the absolute path a transformer script is expected at
func (c Config) ScriptPath(script string) string {
	return filepath.Join(c.Root, c.ScriptDir, script)
}

// ExecutableRoot returns the directory containing the running binary
func ExecutableRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
