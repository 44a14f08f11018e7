package errors

import (
	stderrors "errors"
	"fmt"
)

// DisplayError formats an error for user-friendly display. Child exit
// failures display as nothing since the child already reported them.
func DisplayError(err error) string {
	if err == nil || IsSilent(err) {
		return ""
	}

	var startErr *StartError
	if stderrors.As(err, &startErr) {
		return startErr.Error()
	}

	return fmt.Sprintf("Error: %v", err)
}

// IsSilent reports whether err should be reported only through the exit code
func IsSilent(err error) bool {
	var exitErr *ExitError
	return stderrors.As(err, &exitErr)
}
