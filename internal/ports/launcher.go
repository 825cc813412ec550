package ports

import (
	"context"

	"toolsforwork/internal/domain"
)

// Launcher starts external processes
type Launcher interface {
	// Run starts the process described by spec and blocks until it
	// terminates. Every output chunk is delivered to sink before Run returns.
	// Failure to start is reported as a LaunchFailed termination, never as a
	// separate error.
	Run(ctx context.Context, spec domain.LaunchSpec, sink domain.StreamSink) domain.Termination

	// LookPath resolves a program name against PATH
	LookPath(program string) (string, error)
}
