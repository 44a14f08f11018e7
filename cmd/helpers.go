package cmd

import (
	"github.com/maxkimambo/devtasks/internal/runner"
	"github.com/spf13/cobra"
)

func createRunnerOptions(cmd *cobra.Command) runner.Options {
	shell, _ := cmd.Flags().GetString("shell")

	return runner.Options{
		Shell:  shell,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
}
