package ports

import "os/exec"

// EditorOpener opens a source file in an external editor so the user can
// inspect or hand-edit it between transformations
type EditorOpener interface {
	// Command returns an exec.Cmd for opening a file in the editor.
	// The TUI hands it to bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
