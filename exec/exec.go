// Package exec runs external commands and captures their output.
//
// It is used by the gh backend to drive the GitHub CLI. Settings applied
// through the fluent With* methods are local to the next Run call; settings
// given to New as Options apply to every call.
//
//	gh := exec.NewWrapper(exec.New(exec.WithInheritEnv()), "gh")
//	result, err := gh.Clone().WithContext(ctx).WithStdin(body).Run("api", "repos/octo/hello/issues")
package exec

import (
	"context"
	"io"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor is the interface for executing commands.
type Executor interface {
	// WithEnv sets environment variables for the next run.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the next run.
	WithDir(dir string) Executor

	// WithContext sets the context for the next run. The process is killed
	// when the context is done.
	WithContext(ctx context.Context) Executor

	// WithTimeout bounds the next run. The value is a time.ParseDuration string.
	WithTimeout(timeout string) Executor

	// WithInheritEnv passes the parent process environment to the next run.
	WithInheritEnv() Executor

	// WithStdin feeds r to the standard input of the next run.
	WithStdin(r io.Reader) Executor

	// Run executes the command with the given arguments. The returned Result
	// is non-nil whenever the process was started, even on failure.
	Run(args ...string) (*Result, error)

	// Clone returns a copy of the executor with the same configuration.
	Clone() Executor
}

// Result represents the result of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Option configures a Command with global settings at construction time.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.globalDir = dir
	}
}

// WithInheritEnv returns an Option that always inherits the parent environment.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.globalInheritEnv = true
	}
}
