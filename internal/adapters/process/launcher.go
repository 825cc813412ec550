package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"toolsforwork/internal/domain"
)

const defaultChunkSize = 32 * 1024

// Launcher implements ports.Launcher with os/exec
type Launcher struct {
	logger    *slog.Logger
	chunkSize int
}

// Option configures the Launcher
type Option func(*Launcher)

// WithLogger sets the logger used for pipe diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// WithChunkSize sets the read buffer size for each output stream
func WithChunkSize(n int) Option {
	return func(l *Launcher) {
		if n > 0 {
			l.chunkSize = n
		}
	}
}

// NewLauncher creates a new subprocess launcher
func NewLauncher(opts ...Option) *Launcher {
	l := &Launcher{
		logger:    slog.Default(),
		chunkSize: defaultChunkSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run starts the process and blocks until it exits. Both output streams are
// drained into sink before the exit status is collected. The process is not
// bound to ctx: once started it runs to completion.
func (l *Launcher) Run(ctx context.Context, spec domain.LaunchSpec, sink domain.StreamSink) domain.Termination {
	cmd := exec.Command(spec.Program, spec.Args...) // #nosec G204
	cmd.Env = append(os.Environ(), spec.Env...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return domain.LaunchFailed(fmt.Errorf("stdout pipe: %w", err))
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return domain.LaunchFailed(fmt.Errorf("stderr pipe: %w", err))
	}

	if err := cmd.Start(); err != nil {
		return domain.LaunchFailed(err)
	}
	l.logger.DebugContext(ctx, "process started",
		slog.String("program", spec.Program),
		slog.Int("pid", cmd.Process.Pid),
	)

	var g errgroup.Group
	g.Go(func() error { return l.pump(stdout, sink.AppendStdout) })
	g.Go(func() error { return l.pump(stderr, sink.AppendStderr) })
	if err := g.Wait(); err != nil {
		l.logger.WarnContext(ctx, "output stream read failed", slog.String("error", err.Error()))
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domain.Exited(exitErr.ExitCode())
		}
		l.logger.WarnContext(ctx, "process wait failed", slog.String("error", err.Error()))
		return domain.Exited(-1)
	}
	return domain.Exited(cmd.ProcessState.ExitCode())
}

// pump copies r into emit chunk by chunk until EOF
func (l *Launcher) pump(r io.Reader, emit func([]byte)) error {
	buf := make([]byte, l.chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			emit(buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, fs.ErrClosed) {
				return nil
			}
			return err
		}
	}
}

// LookPath resolves a program name against PATH
func (l *Launcher) LookPath(program string) (string, error) {
	return exec.LookPath(program)
}
