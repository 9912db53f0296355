package exec

import (
	"bytes"
	"context"
	"io"
	"os"
	osexec "os/exec"
	"sort"
	"time"
)

// Command is the concrete implementation of the Executor interface.
type Command struct {
	config  *config
	ctx     context.Context
	stdin   io.Reader
	timeout string
}

// New creates a new Command with the given global options.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
		ctx:    context.Background(),
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithEnv sets environment variables for the next run.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the next run.
func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

// WithContext sets the context for the next run.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithTimeout sets a timeout for the next run.
func (c *Command) WithTimeout(timeout string) Executor {
	c.timeout = timeout
	return c
}

// WithInheritEnv enables environment inheritance for the next run.
func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// WithStdin sets the standard input for the next run.
func (c *Command) WithStdin(r io.Reader) Executor {
	c.stdin = r
	return c
}

// Run executes the command with the given arguments.
func (c *Command) Run(args ...string) (*Result, error) {
	defer c.reset()

	if len(args) == 0 {
		return nil, &ExecError{
			Command:  args,
			ExitCode: -1,
			Err:      osexec.ErrNotFound,
		}
	}

	ctx := c.ctx
	if c.timeout != "" {
		duration, err := time.ParseDuration(c.timeout)
		if err != nil {
			return nil, &ExecError{Command: args, ExitCode: -1, Err: err}
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)

	if dir := c.config.effectiveDir(); dir != "" {
		cmd.Dir = dir
	}

	if c.config.effectiveInheritEnv() {
		cmd.Env = os.Environ()
	}
	env := c.config.effectiveEnv()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Env = append(cmd.Env, k+"="+env[k])
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdin = c.stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if err != nil {
		return result, &ExecError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}

	return result, nil
}

// Clone creates a copy of the executor with the same configuration.
func (c *Command) Clone() Executor {
	return &Command{
		config: c.config.clone(),
		ctx:    c.ctx,
	}
}

func (c *Command) reset() {
	c.config.resetLocal()
	c.stdin = nil
	c.timeout = ""
}
