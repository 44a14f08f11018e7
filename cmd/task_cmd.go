package cmd

import (
	"errors"
	"fmt"
	"os/exec"

	taskerrors "github.com/maxkimambo/devtasks/internal/errors"
	"github.com/maxkimambo/devtasks/internal/logger"
	"github.com/maxkimambo/devtasks/internal/tasks"
	"github.com/spf13/cobra"
)

func newTaskCmd(def tasks.Definition, newExecutor ExecutorFactory) *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   def.Name,
		Short: def.Short,
		Args:  cobra.NoArgs,
	}
	build := def.Bind(taskCmd.Flags())

	taskCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runTask(cmd, def.Name, build(), newExecutor)
	}
	return taskCmd
}

func runTask(cmd *cobra.Command, name string, command tasks.Command, newExecutor ExecutorFactory) error {
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), command.Line)
		return err
	}
	if echo, _ := cmd.Flags().GetBool("echo"); echo {
		logger.Command(command.Line)
	}

	executor := newExecutor(createRunnerOptions(cmd))
	res := executor.Run(cmd.Context(), command)

	var exitErr *exec.ExitError
	switch {
	case res.Success():
		return nil
	case res.Err == nil, errors.As(res.Err, &exitErr):
		return taskerrors.NewExitError(name, command.Line, res.Code)
	default:
		return taskerrors.NewStartError(name, command.Line, res.Err)
	}
}
