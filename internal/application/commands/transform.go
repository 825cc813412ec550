package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"toolsforwork/internal/application"
	"toolsforwork/internal/config"
	"toolsforwork/internal/domain"
	"toolsforwork/internal/logging"
	"toolsforwork/internal/ports"
)

// TransformResult contains the result of a transformation run
type TransformResult struct {
	Invocation domain.Invocation
	Outcome    domain.Outcome
	Message    string
}

// TransformCommand runs one external transformer against the active document
type TransformCommand struct {
	host        ports.Host
	launcher    ports.Launcher
	cfg         config.Config
	Transformer domain.Transformer

	reporter *Reporter
	logger   *slog.Logger
	observe  func(domain.State)
}

// Option configures a TransformCommand
type Option func(*TransformCommand)

// WithLogger sets the logger for invocation diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *TransformCommand) {
		c.logger = logger
	}
}

// WithStateObserver registers a callback for every state transition
func WithStateObserver(fn func(domain.State)) Option {
	return func(c *TransformCommand) {
		c.observe = fn
	}
}

// NewTransformCommand creates a new TransformCommand
func NewTransformCommand(host ports.Host, launcher ports.Launcher, cfg config.Config, t domain.Transformer, opts ...Option) *TransformCommand {
	c := &TransformCommand{
		host:        host,
		launcher:    launcher,
		cfg:         cfg,
		Transformer: t,
		reporter:    NewReporter(host, t, cfg.Interpreter),
		logger:      logging.New("orchestrator"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("command", string(t.ID)))
	return c
}

func (c *TransformCommand) advance(s domain.State) {
	c.logger.Debug("state", slog.String("to", s.String()))
	if c.observe != nil {
		c.observe(s)
	}
}

// Validate checks that the target path can be transformed
func (c *TransformCommand) Validate(targetPath string) error {
	return application.ValidateTarget(targetPath)
}

// ScriptPath returns the absolute location the transformer script is
// expected at
func (c *TransformCommand) ScriptPath() (string, error) {
	path, err := filepath.Abs(c.cfg.ScriptPath(c.Transformer.Script))
	if err != nil {
		return "", fmt.Errorf("resolve script path: %w", err)
	}
	return path, nil
}

// Resolve returns the script path, or a TransformerNotFoundError if nothing
// exists there
func (c *TransformCommand) Resolve() (string, error) {
	path, err := c.ScriptPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		return path, &application.TransformerNotFoundError{Path: path}
	}
	return path, nil
}

// Execute runs the command end to end. Every failure has already been shown
// to the user when Execute returns; the error is for callers that need an
// exit status.
func (c *TransformCommand) Execute(ctx context.Context) (*TransformResult, error) {
	c.advance(domain.StateValidating)
	defer c.advance(domain.StateFinalized)

	doc, ok := c.host.ActiveDocument()
	if !ok {
		c.reporter.ReportNoActiveEditor()
		return nil, application.ErrNoActiveEditor
	}

	if err := c.Validate(doc.Path()); err != nil {
		c.reporter.ReportUnsupportedFile()
		if !errors.Is(err, application.ErrUnsupportedFileType) {
			err = &application.UnsupportedFileError{Path: doc.Path()}
		}
		return nil, err
	}

	c.advance(domain.StateResolving)
	scriptPath, err := c.Resolve()
	if err != nil {
		var notFound *application.TransformerNotFoundError
		if errors.As(err, &notFound) {
			c.reporter.ReportTransformerNotFound(notFound.Path)
		} else {
			c.reporter.ReportTransformerNotFound(scriptPath)
		}
		return nil, err
	}

	targetPath, err := filepath.Abs(doc.Path())
	if err != nil {
		targetPath = doc.Path()
	}

	inv := domain.Invocation{
		Transformer: c.Transformer,
		TargetPath:  targetPath,
		ScriptPath:  scriptPath,
	}
	return c.run(ctx, doc, inv)
}

// run launches the subprocess inside a progress scope that stays open until
// the outcome has been reported
func (c *TransformCommand) run(ctx context.Context, doc ports.Document, inv domain.Invocation) (*TransformResult, error) {
	c.advance(domain.StateLaunching)

	result := &TransformResult{Invocation: inv}
	var runErr error

	opts := ports.ProgressOptions{Title: c.Transformer.ProgressTitle, Cancellable: false}
	progressErr := c.host.WithProgress(ctx, opts, func(ctx context.Context) error {
		session := domain.NewSession()
		spec := inv.LaunchSpec(c.cfg.Interpreter, c.cfg.InterpreterFlags)

		c.advance(domain.StateRunning)
		term := c.launcher.Run(ctx, spec, session)
		if err := session.Finalize(term); err != nil {
			c.logger.Warn("session finalized twice", slog.String("error", err.Error()))
		}

		outcome := session.Outcome()
		result.Outcome = outcome
		c.logger.Info("transformer finished",
			slog.String("target", inv.TargetPath),
			slog.String("outcome", outcome.Kind.String()),
			slog.Int("exit_code", outcome.ExitCode),
		)

		c.reporter.Report(outcome)

		switch outcome.Kind {
		case domain.OutcomeSuccess:
			result.Message = c.Transformer.SuccessMessage
			if err := doc.Revert(ctx); err != nil {
				c.reporter.ReportReloadFailure(inv.TargetPath, err)
				runErr = fmt.Errorf("reload %s: %w", inv.TargetPath, err)
			}
		case domain.OutcomeFailure:
			result.Message = outcome.FailureMessage()
			runErr = &application.ExitError{Code: outcome.ExitCode, Message: result.Message}
		case domain.OutcomeLaunchFailure:
			result.Message = outcome.LaunchErr.Error()
			runErr = &application.LaunchError{Program: c.cfg.Interpreter, Err: outcome.LaunchErr}
		}
		return nil
	})
	if progressErr != nil {
		c.logger.Warn("progress indicator failed", slog.String("error", progressErr.Error()))
	}

	return result, runErr
}
