package errors

import (
	stderrors "errors"
	"fmt"
)

// ExitError reports a child process that ran but exited non-zero. The child
// has already written its own diagnostics, so nothing is added on display.
type ExitError struct {
	Task    string
	Command string
	Code    int
}

// Error implements the error interface
func (e *ExitError) Error() string {
	return fmt.Sprintf("task %s: %q exited with code %d", e.Task, e.Command, e.Code)
}

// StartError reports a child process that could not be spawned at all
type StartError struct {
	Task          string
	Command       string
	OriginalError error
}

// Error implements the error interface
func (e *StartError) Error() string {
	return e.OriginalError.Error()
}

// Unwrap returns the original error for error chain compatibility
func (e *StartError) Unwrap() error {
	return e.OriginalError
}

// NewExitError creates an error for a non-zero child exit
func NewExitError(task, command string, code int) *ExitError {
	return &ExitError{Task: task, Command: command, Code: code}
}

// NewStartError wraps the execution layer's failure unchanged
func NewStartError(task, command string, originalErr error) *StartError {
	return &StartError{Task: task, Command: command, OriginalError: originalErr}
}

// ExitCode maps an error returned by the CLI to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	return 1
}
