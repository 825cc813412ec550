package application

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "targetPath",
			value:     "/src/colors.ts",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "targetPath",
			value:     "",
			wantErr:   true,
			wantMsg:   "target path is required",
		},
		{
			name:      "whitespace only",
			fieldName: "root",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "extension root is required",
		},
		{
			name:      "unknown field name kept as-is",
			fieldName: "mode",
			value:     "",
			wantErr:   true,
			wantMsg:   "mode is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if valErr.Field != tt.fieldName {
				t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
			}
			if valErr.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, valErr.Message)
			}
		})
	}
}

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name            string
		path            string
		wantErr         bool
		wantUnsupported bool
	}{
		{name: "typescript", path: "/src/colors.ts"},
		{name: "tsx", path: "/src/App.tsx"},
		{name: "javascript", path: "/src/colors.js", wantErr: true, wantUnsupported: true},
		{name: "no extension", path: "/src/Makefile", wantErr: true, wantUnsupported: true},
		{name: "empty path", path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTarget(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTarget(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got := errors.Is(err, ErrUnsupportedFileType); got != tt.wantUnsupported {
				t.Errorf("errors.Is(err, ErrUnsupportedFileType) = %v, want %v", got, tt.wantUnsupported)
			}
		})
	}
}

func TestLaunchError_Is(t *testing.T) {
	missing := &LaunchError{
		Program: "python",
		Err:     &exec.Error{Name: "python", Err: exec.ErrNotFound},
	}
	if !errors.Is(missing, ErrLaunchFailed) {
		t.Error("missing interpreter should match ErrLaunchFailed")
	}
	if !errors.Is(missing, ErrInterpreterMissing) {
		t.Error("missing interpreter should match ErrInterpreterMissing")
	}

	denied := &LaunchError{Program: "python", Err: errors.New("permission denied")}
	if !errors.Is(denied, ErrLaunchFailed) {
		t.Error("permission error should match ErrLaunchFailed")
	}
	if errors.Is(denied, ErrInterpreterMissing) {
		t.Error("permission error should not match ErrInterpreterMissing")
	}

	wrapped := fmt.Errorf("invoke: %w", missing)
	if !errors.Is(wrapped, ErrInterpreterMissing) {
		t.Error("wrapped launch error should still match ErrInterpreterMissing")
	}
}

func TestTypedErrors_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"unsupported", &UnsupportedFileError{Path: "a.js"}, ErrUnsupportedFileType},
		{"not found", &TransformerNotFoundError{Path: "/x/enum_updater.py"}, ErrTransformerNotFound},
		{"exit", &ExitError{Code: 3, Message: "boom"}, ErrNonZeroExit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.target)
			}
			if errors.Is(tt.err, ErrLaunchFailed) {
				t.Errorf("%v unexpectedly matches ErrLaunchFailed", tt.err)
			}
		})
	}
}

func TestLookupTransformer_Unknown(t *testing.T) {
	_, err := LookupTransformer("format")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("error = %v, want ErrUnknownCommand", err)
	}
}
