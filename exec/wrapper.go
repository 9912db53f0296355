package exec

import (
	"context"
	"io"
)

// CommandWrapper prepends a fixed command name to every Run call. It
// implements Executor, so it can stand in anywhere one is expected.
type CommandWrapper struct {
	executor Executor
	cmd      string
}

// NewWrapper creates a new CommandWrapper that prepends cmd to all Run calls.
// The executor may be any Executor, including mocks.
func NewWrapper(executor Executor, cmd string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		cmd:      cmd,
	}
}

// WithEnv sets environment variables for the next run.
func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

// WithDir sets the working directory for the next run.
func (w *CommandWrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

// WithContext sets the context for the next run.
func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

// WithTimeout sets a timeout for the next run.
func (w *CommandWrapper) WithTimeout(timeout string) Executor {
	w.executor = w.executor.WithTimeout(timeout)
	return w
}

// WithInheritEnv enables environment inheritance for the next run.
func (w *CommandWrapper) WithInheritEnv() Executor {
	w.executor = w.executor.WithInheritEnv()
	return w
}

// WithStdin sets the standard input for the next run.
func (w *CommandWrapper) WithStdin(r io.Reader) Executor {
	w.executor = w.executor.WithStdin(r)
	return w
}

// Run executes the wrapped command with args appended.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	fullArgs := append([]string{w.cmd}, args...)
	return w.executor.Run(fullArgs...)
}

// Clone creates a copy of the wrapper with the same configuration.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		cmd:      w.cmd,
	}
}
