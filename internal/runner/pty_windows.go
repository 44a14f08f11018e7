//go:build windows

package runner

import (
	"context"

	"github.com/maxkimambo/devtasks/internal/logger"
	"github.com/maxkimambo/devtasks/internal/tasks"
)

func (r *Runner) runPTY(ctx context.Context, cmd tasks.Command) Result {
	logger.Debug("pseudo-terminals are not supported on windows, running without one")
	return r.runPlain(ctx, cmd)
}
