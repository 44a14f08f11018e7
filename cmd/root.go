package cmd

import (
	"context"

	"github.com/maxkimambo/devtasks/internal/logger"
	"github.com/maxkimambo/devtasks/internal/runner"
	"github.com/maxkimambo/devtasks/internal/tasks"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

// ExecutorFactory creates the executor a task runs on once flags are parsed
type ExecutorFactory func(opts runner.Options) runner.Executor

// DefaultExecutor runs tasks as real child processes
func DefaultExecutor(opts runner.Options) runner.Executor {
	return runner.New(opts)
}

// NewRootCmd builds the command tree with one subcommand per registered task.
func NewRootCmd(registry *tasks.Registry, newExecutor ExecutorFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "devtasks",
		Short: "Developer task shortcuts for the local development environment",
		Long: `Developer task shortcuts for running the app server, a local mongod,
the mongo shell, dependency installs and the test suite.

Each task builds a single shell command and runs it to completion. The exit
code of the command becomes the exit code of devtasks.

EXAMPLES:
# Start mongod in the foreground on a custom port
devtasks mongo --no-daemon --port 27017

# Run a single test module
devtasks test --module test_models

# Show what a task would run without running it
devtasks --dry-run mongoshell --db osf_test`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("list"); list {
				return printTasks(cmd.OutOrStdout(), registry)
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print the command a task would run without running it")
	rootCmd.PersistentFlags().Bool("echo", false, "Print each command before running it")
	rootCmd.PersistentFlags().String("shell", runner.DefaultShell, "Shell used to interpret task commands")
	rootCmd.Flags().BoolP("list", "l", false, "List available tasks")

	for _, def := range registry.All() {
		rootCmd.AddCommand(newTaskCmd(def, newExecutor))
	}
	rootCmd.AddCommand(newListCmd(registry))

	return rootCmd
}

// Execute runs the CLI against the given registry
func Execute(ctx context.Context, registry *tasks.Registry, newExecutor ExecutorFactory) error {
	return NewRootCmd(registry, newExecutor).ExecuteContext(ctx)
}

func setupLogging(cmd *cobra.Command) {
	debug, _ := cmd.Flags().GetBool("debug")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")

	logger.SetupWithWriters(verbose || debug, jsonLogs, quiet, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger.Debug("Debug logging enabled")
}
