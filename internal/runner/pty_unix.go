//go:build !windows

package runner

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"github.com/mattn/go-isatty"
	"github.com/maxkimambo/devtasks/internal/logger"
	"github.com/maxkimambo/devtasks/internal/tasks"
	"golang.org/x/term"
)

func (r *Runner) runPTY(ctx context.Context, cmd tasks.Command) Result {
	c := r.command(ctx, cmd)
	ptmx, err := pty.Start(c)
	if err != nil {
		return Result{Code: 1, Err: err}
	}
	defer func() { _ = ptmx.Close() }()

	if f, ok := r.opts.Stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		restore := attachTerminal(f, ptmx)
		defer restore()
	}

	go func() { _, _ = io.Copy(ptmx, r.opts.Stdin) }()

	// Reading the master fails with EIO once the child closes its side.
	_, _ = io.Copy(r.opts.Stdout, ptmx)

	return exitResult(ctx, c.Wait())
}

// attachTerminal mirrors the size of tty onto ptmx and switches tty to raw
// mode. The returned func undoes both.
func attachTerminal(tty, ptmx *os.File) func() {
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	go func() {
		for range winch {
			if err := pty.InheritSize(tty, ptmx); err != nil {
				logger.Debugf("resize pty: %v", err)
			}
		}
	}()
	winch <- syscall.SIGWINCH

	fd := int(tty.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		logger.Debugf("raw mode unavailable: %v", err)
	}

	return func() {
		signal.Stop(winch)
		close(winch)
		if state != nil {
			_ = term.Restore(fd, state)
		}
	}
}
