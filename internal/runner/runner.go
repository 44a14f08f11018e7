package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/maxkimambo/devtasks/internal/logger"
	"github.com/maxkimambo/devtasks/internal/tasks"
)

// DefaultShell interprets task command lines
const DefaultShell = "/bin/bash"

// Result carries the child's exit code. Err is set when the process could
// not be started or did not exit cleanly.
type Result struct {
	Code int
	Err  error
}

// Success reports whether the child exited with code 0.
func (r Result) Success() bool {
	return r.Code == 0 && r.Err == nil
}

// Executor runs built commands to completion.
type Executor interface {
	Run(ctx context.Context, cmd tasks.Command) Result
}

// Options configures a Runner. Zero values fall back to the process's own
// stdio and DefaultShell.
type Options struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes commands through a shell, synchronously.
type Runner struct {
	opts Options
}

// New creates a runner, filling unset options with defaults.
func New(opts Options) *Runner {
	if opts.Shell == "" {
		opts.Shell = DefaultShell
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Runner{opts: opts}
}

// Shell returns the shell used to interpret command lines.
func (r *Runner) Shell() string {
	return r.opts.Shell
}

// Run executes cmd and blocks until the child exits. Commands requesting a
// PTY are attached to a pseudo-terminal.
func (r *Runner) Run(ctx context.Context, cmd tasks.Command) Result {
	logger.WithFieldsMap(map[string]interface{}{
		"shell": r.opts.Shell,
		"pty":   cmd.PTY,
	}).Debugf("+ %s", cmd.Line)

	if cmd.PTY {
		return r.runPTY(ctx, cmd)
	}
	return r.runPlain(ctx, cmd)
}

func (r *Runner) command(ctx context.Context, cmd tasks.Command) *exec.Cmd {
	return exec.CommandContext(ctx, r.opts.Shell, "-c", cmd.Line)
}

func (r *Runner) runPlain(ctx context.Context, cmd tasks.Command) Result {
	c := r.command(ctx, cmd)
	c.Stdin = r.opts.Stdin
	c.Stdout = r.opts.Stdout
	c.Stderr = r.opts.Stderr
	return exitResult(ctx, c.Run())
}

func exitResult(ctx context.Context, err error) Result {
	if err == nil {
		return Result{}
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return Result{Code: 128 + int(ws.Signal()), Err: err}
		}
		return Result{Code: ee.ExitCode(), Err: err}
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{Code: 124, Err: err}
	}
	return Result{Code: 1, Err: err}
}
