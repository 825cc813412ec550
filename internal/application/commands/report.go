package commands

import (
	"fmt"

	"toolsforwork/internal/application"
	"toolsforwork/internal/domain"
	"toolsforwork/internal/ports"
)

// User-facing text shared by every transformer
const (
	MsgNoActiveEditor = "No active editor!"
	ResultHeader      = "Transformation result:"
	ErrorsHeader      = "Errors:"
)

// ReportHost is the part of the host surface the Reporter writes to
type ReportHost interface {
	ports.Notifier
	ports.OutputPanels
}

// Reporter renders invocation outcomes through notifications and log panels
type Reporter struct {
	host        ReportHost
	transformer domain.Transformer
	interpreter string
}

// NewReporter creates a Reporter labelled for one transformer
func NewReporter(host ReportHost, t domain.Transformer, interpreter string) *Reporter {
	return &Reporter{
		host:        host,
		transformer: t,
		interpreter: interpreter,
	}
}

func (r *Reporter) notify(sev ports.Severity, msg string) {
	r.host.Notify(ports.Notification{
		Severity: sev,
		Source:   r.transformer.Title,
		Message:  msg,
	})
}

// ReportNoActiveEditor shows an error for a command fired without an editor
func (r *Reporter) ReportNoActiveEditor() {
	r.notify(ports.SeverityError, MsgNoActiveEditor)
}

// ReportUnsupportedFile shows a warning for a target with the wrong extension
func (r *Reporter) ReportUnsupportedFile() {
	r.notify(ports.SeverityWarning,
		"This command only works with TypeScript files "+domain.SupportedSourcesHint())
}

// ReportTransformerNotFound shows an error naming the resolved script path
func (r *Reporter) ReportTransformerNotFound(path string) {
	r.notify(ports.SeverityError, fmt.Sprintf("Transformer script not found: %s", path))
}

// ReportSuccess shows the success notification and, when the transformer
// wrote anything to stdout, replaces the output panel content with it
func (r *Reporter) ReportSuccess(output string) {
	r.notify(ports.SeverityInfo, r.transformer.SuccessMessage)

	if output == "" {
		return
	}
	panel := r.host.OutputPanel(r.transformer.OutputPanel())
	panel.Clear()
	panel.AppendLine(ResultHeader)
	panel.AppendLine(output)
	panel.Show()
}

// ReportFailure shows an error whose message is the first non-empty of
// stderr, stdout and the fallback text. Captured output goes to the error
// panel, stderr first.
func (r *Reporter) ReportFailure(errorOutput, output string) {
	outcome := domain.Outcome{Kind: domain.OutcomeFailure, Output: output, ErrorOutput: errorOutput}
	r.notify(ports.SeverityError, outcome.FailureMessage())

	if !outcome.HasOutput() {
		return
	}
	panel := r.host.OutputPanel(r.transformer.ErrorPanel())
	panel.Clear()
	panel.AppendLine(ErrorsHeader)
	if errorOutput != "" {
		panel.AppendLine(errorOutput)
	}
	if output != "" {
		panel.AppendLine(output)
	}
	panel.Show()
}

// ReportLaunchFailure shows why the subprocess could not start, plus a
// second notification when the interpreter binary is missing
func (r *Reporter) ReportLaunchFailure(err error) {
	r.notify(ports.SeverityError, fmt.Sprintf("Failed to start %s: %v", r.interpreter, err))
	if application.IsProgramMissing(err) {
		r.notify(ports.SeverityError, fmt.Sprintf("%s is not installed or not on PATH", r.interpreter))
	}
}

// ReportReloadFailure shows an error when the host could not reload the file
func (r *Reporter) ReportReloadFailure(path string, err error) {
	r.notify(ports.SeverityError, fmt.Sprintf("Failed to reload %s: %v", path, err))
}

// Report dispatches a classified outcome to the matching renderer
func (r *Reporter) Report(o domain.Outcome) {
	switch o.Kind {
	case domain.OutcomeSuccess:
		r.ReportSuccess(o.Output)
	case domain.OutcomeFailure:
		r.ReportFailure(o.ErrorOutput, o.Output)
	case domain.OutcomeLaunchFailure:
		r.ReportLaunchFailure(o.LaunchErr)
	}
}
