package editor

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/google/go-cmp/cmp"

	"toolsforwork/internal/ports"
)

var _ ports.EditorOpener = (*Opener)(nil)

func fakeOpener(env map[string]string, onPath ...string) *Opener {
	return &Opener{
		getenv: func(k string) string { return env[k] },
		lookPath: func(name string) (string, error) {
			for _, p := range onPath {
				if p == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", exec.ErrNotFound
		},
	}
}

func TestOpener_Editor(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		onPath []string
		want   string
	}{
		{"editor wins", map[string]string{"EDITOR": "hx", "VISUAL": "code"}, []string{"vim"}, "hx"},
		{"visual second", map[string]string{"VISUAL": "code --wait"}, nil, "code --wait"},
		{"blank editor ignored", map[string]string{"EDITOR": "  ", "VISUAL": "emacs"}, nil, "emacs"},
		{"fallback order", nil, []string{"nano", "vim"}, "/usr/bin/vim"},
		{"nothing found", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fakeOpener(tt.env, tt.onPath...).Editor(); got != tt.want {
				t.Errorf("Editor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpener_CommandSplitsArguments(t *testing.T) {
	o := fakeOpener(map[string]string{"EDITOR": "code --wait"})

	cmd, err := o.Command("src/colors.ts")
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if diff := cmp.Diff([]string{"code", "--wait", "src/colors.ts"}, cmd.Args); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
}

func TestOpener_CommandNoEditor(t *testing.T) {
	_, err := fakeOpener(nil).Command("a.ts")
	if err == nil {
		t.Fatal("Command() error = nil, want error")
	}
	if errors.Is(err, exec.ErrNotFound) {
		t.Error("Command() leaked lookup error")
	}
}
