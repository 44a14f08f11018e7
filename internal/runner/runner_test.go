//go:build !windows

package runner

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/creack/pty"
	"github.com/maxkimambo/devtasks/internal/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(stdout, stderr *bytes.Buffer) *Runner {
	return New(Options{
		Shell:  "/bin/sh",
		Stdin:  strings.NewReader(""),
		Stdout: stdout,
		Stderr: stderr,
	})
}

func TestNewDefaults(t *testing.T) {
	r := New(Options{})
	assert.Equal(t, DefaultShell, r.Shell())
	assert.NotNil(t, r.opts.Stdin)
	assert.NotNil(t, r.opts.Stdout)
	assert.NotNil(t, r.opts.Stderr)
}

func TestRunSuccess(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	res := r.Run(context.Background(), tasks.Command{Line: "echo hello; echo oops >&2"})

	require.NoError(t, res.Err)
	assert.True(t, res.Success())
	assert.Equal(t, "hello\n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestRunPropagatesExitCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	for _, code := range []int{1, 3, 42} {
		res := r.Run(context.Background(), tasks.Command{Line: "exit " + strconv.Itoa(code)})
		assert.Equal(t, code, res.Code)
		assert.Error(t, res.Err)
		assert.False(t, res.Success())
	}
}

func TestRunMissingBinaryFailsDownstream(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	res := r.Run(context.Background(), tasks.Command{Line: "definitely-not-a-real-binary-xyz"})

	assert.Equal(t, 127, res.Code)
	assert.NotEmpty(t, stderr.String())
}

func TestRunSignalledChild(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	res := r.Run(context.Background(), tasks.Command{Line: "kill -TERM $$"})

	assert.Equal(t, 128+15, res.Code)
}

func TestRunMissingShell(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := New(Options{
		Shell:  "/nonexistent/shell",
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	res := r.Run(context.Background(), tasks.Command{Line: "true"})

	assert.Equal(t, 1, res.Code)
	assert.Error(t, res.Err)
}

func TestRunWithPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}
	_ = ptmx.Close()
	_ = tty.Close()

	var stdout, stderr bytes.Buffer
	r := newTestRunner(&stdout, &stderr)

	res := r.Run(context.Background(), tasks.Command{
		Line: "test -t 1 && echo interactive; exit 4",
		PTY:  true,
	})

	assert.Equal(t, 4, res.Code)
	assert.Contains(t, stdout.String(), "interactive")
	assert.Empty(t, stderr.String())
}
