package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Fallbacks are tried in order when neither $EDITOR nor $VISUAL is set
var Fallbacks = []string{"nvim", "vim", "vi", "nano", "code"}

// Opener implements ports.EditorOpener
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{getenv: os.Getenv, lookPath: exec.LookPath}
}

// Command returns an exec.Cmd attached to the terminal. Editor values with
// arguments such as "code --wait" are split on whitespace.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.Editor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	fields := strings.Fields(editor)
	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// Editor returns the editor command line, or "" when none is available
func (o *Opener) Editor() string {
	for _, name := range []string{"EDITOR", "VISUAL"} {
		if v := strings.TrimSpace(o.getenv(name)); v != "" {
			return v
		}
	}

	for _, editor := range Fallbacks {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
