package domain

// State is the lifecycle position of a single invocation
type State int

const (
	StateIdle State = iota
	StateValidating
	StateResolving
	StateLaunching
	StateRunning
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateResolving:
		return "resolving"
	case StateLaunching:
		return "launching"
	case StateRunning:
		return "running"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Invocation is the immutable context of one command run against one file
type Invocation struct {
	Transformer Transformer
	TargetPath  string // absolute
	ScriptPath  string // absolute
}

// LaunchSpec describes how to start a subprocess
type LaunchSpec struct {
	Program string
	Args    []string
	Env     []string // KEY=VALUE entries added to the inherited environment
}

// UTF8StreamEnv forces UTF-8 on the interpreter's own standard streams
const UTF8StreamEnv = "PYTHONIOENCODING=utf-8"

// LaunchSpec builds the subprocess command line for this invocation:
// <interpreter> <flags...> <script> <target>
func (inv Invocation) LaunchSpec(interpreter string, flags []string) LaunchSpec {
	args := make([]string, 0, len(flags)+2)
	args = append(args, flags...)
	args = append(args, inv.ScriptPath, inv.TargetPath)
	return LaunchSpec{
		Program: interpreter,
		Args:    args,
		Env:     []string{UTF8StreamEnv},
	}
}
