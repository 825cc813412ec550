package application

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// Sentinel errors for the command taxonomy
var (
	ErrNoActiveEditor      = errors.New("no active editor")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrTransformerNotFound = errors.New("transformer not found")
	ErrLaunchFailed        = errors.New("subprocess launch failed")
	ErrInterpreterMissing  = errors.New("interpreter not found")
	ErrNonZeroExit         = errors.New("subprocess exited with non-zero status")
	ErrUnknownCommand      = errors.New("unknown command")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UnsupportedFileError is returned for targets without a recognized extension
type UnsupportedFileError struct {
	Path string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Path)
}

func (e *UnsupportedFileError) Is(target error) bool {
	return target == ErrUnsupportedFileType
}

// TransformerNotFoundError carries the resolved script path that was missing
type TransformerNotFoundError struct {
	Path string
}

func (e *TransformerNotFoundError) Error() string {
	return fmt.Sprintf("transformer script not found: %s", e.Path)
}

func (e *TransformerNotFoundError) Is(target error) bool {
	return target == ErrTransformerNotFound
}

// LaunchError represents a subprocess that could not be started
type LaunchError struct {
	Program string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Program, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

func (e *LaunchError) Is(target error) bool {
	switch target {
	case ErrLaunchFailed:
		return true
	case ErrInterpreterMissing:
		return IsProgramMissing(e.Err)
	}
	return false
}

// ExitError represents a subprocess that ran and exited non-zero
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d: %s", e.Code, e.Message)
}

func (e *ExitError) Is(target error) bool {
	return target == ErrNonZeroExit
}

// IsProgramMissing reports whether a launch error means the program binary
// itself could not be found
func IsProgramMissing(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
