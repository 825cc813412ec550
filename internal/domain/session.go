package domain

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrSessionFinalized is returned when a session is finalized twice
var ErrSessionFinalized = errors.New("session already finalized")

// FallbackFailureMessage is shown when a failed run wrote nothing
const FallbackFailureMessage = "Unknown error"

// TerminationKind tags the terminal event of a subprocess
type TerminationKind int

const (
	TerminationExited TerminationKind = iota
	TerminationLaunchFailed
)

func (k TerminationKind) String() string {
	switch k {
	case TerminationExited:
		return "exited"
	case TerminationLaunchFailed:
		return "launch failed"
	default:
		return "unknown"
	}
}

// Termination is the single terminal event of a subprocess: either it
// exited with a status code or it never started.
type Termination struct {
	Kind     TerminationKind
	ExitCode int
	Err      error
}

// Exited builds a termination for a process that ran and exited
func Exited(code int) Termination {
	return Termination{Kind: TerminationExited, ExitCode: code}
}

// LaunchFailed builds a termination for a process that could not start
func LaunchFailed(err error) Termination {
	return Termination{Kind: TerminationLaunchFailed, ExitCode: -1, Err: err}
}

func (t Termination) String() string {
	if t.Kind == TerminationLaunchFailed {
		return fmt.Sprintf("launch failed: %v", t.Err)
	}
	return fmt.Sprintf("exited with code %d", t.ExitCode)
}

// StreamSink receives subprocess output chunks as they arrive
type StreamSink interface {
	AppendStdout(p []byte)
	AppendStderr(p []byte)
}

// Session accumulates the output of one subprocess run. It is owned by a
// single invocation and finalized exactly once.
type Session struct {
	mu          sync.Mutex
	stdout      strings.Builder
	stderr      strings.Builder
	termination *Termination
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{}
}

// AppendStdout appends a chunk of standard output
func (s *Session) AppendStdout(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stdout.Write(p)
}

// AppendStderr appends a chunk of standard error
func (s *Session) AppendStderr(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stderr.Write(p)
}

// Stdout returns the accumulated standard output
func (s *Session) Stdout() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stdout.String()
}

// Stderr returns the accumulated standard error
func (s *Session) Stderr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stderr.String()
}

// Finalize records the terminal event. Only the first call takes effect.
func (s *Session) Finalize(t Termination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.termination != nil {
		return ErrSessionFinalized
	}
	s.termination = &t
	return nil
}

// Finalized reports whether a terminal event has been recorded
func (s *Session) Finalized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.termination != nil
}

// Outcome classifies the finalized session. A session that was never
// finalized is classified as a launch failure.
func (s *Session) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Outcome{
		Output:      s.stdout.String(),
		ErrorOutput: s.stderr.String(),
	}

	switch {
	case s.termination == nil:
		out.Kind = OutcomeLaunchFailure
		out.ExitCode = -1
		out.LaunchErr = errors.New("subprocess never terminated")
	case s.termination.Kind == TerminationLaunchFailed:
		out.Kind = OutcomeLaunchFailure
		out.ExitCode = -1
		out.LaunchErr = s.termination.Err
	case s.termination.ExitCode == 0:
		out.Kind = OutcomeSuccess
	default:
		out.Kind = OutcomeFailure
		out.ExitCode = s.termination.ExitCode
	}
	return out
}

// OutcomeKind tags a classified result
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailure
	OutcomeLaunchFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeLaunchFailure:
		return "launch failure"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one subprocess run
type Outcome struct {
	Kind        OutcomeKind
	Output      string // captured stdout
	ErrorOutput string // captured stderr
	ExitCode    int
	LaunchErr   error
}

// FailureMessage returns the first non-empty of stderr, stdout and the
// fallback message
func (o Outcome) FailureMessage() string {
	if o.ErrorOutput != "" {
		return o.ErrorOutput
	}
	if o.Output != "" {
		return o.Output
	}
	return FallbackFailureMessage
}

// HasOutput reports whether either stream captured anything
func (o Outcome) HasOutput() bool {
	return o.Output != "" || o.ErrorOutput != ""
}
