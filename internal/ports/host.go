package ports

import "context"

// Document is the file open in the host editor
type Document interface {
	// Path returns the file system path of the document
	Path() string

	// Revert reloads the document from disk, discarding unsaved in-editor state
	Revert(ctx context.Context) error
}

// Workspace gives access to the active editor
type Workspace interface {
	// ActiveDocument returns the focused document, or false if no editor is active
	ActiveDocument() (Document, bool)
}

// Severity is the level of a user-visible notification
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is a short user-visible message
type Notification struct {
	Severity Severity
	Source   string // command title, e.g. "Enum Updater"
	Message  string
}

// Notifier shows notifications to the user
type Notifier interface {
	Notify(n Notification)
}

// ProgressOptions configures a progress indicator
type ProgressOptions struct {
	Title       string
	Cancellable bool
}

// ProgressReporter shows an indeterminate progress indicator for the
// lifetime of a task. The indicator closes only after task returns.
type ProgressReporter interface {
	WithProgress(ctx context.Context, opts ProgressOptions, task func(ctx context.Context) error) error
}

// OutputPanel is a named, reusable log panel
type OutputPanel interface {
	Clear()
	AppendLine(line string)
	Show()
}

// OutputPanels creates or reuses log panels by name
type OutputPanels interface {
	OutputPanel(name string) OutputPanel
}

// Host is the editor surface consumed by the command layer
type Host interface {
	Workspace
	Notifier
	ProgressReporter
	OutputPanels
}
