package main

import (
	"context"
	"os"

	"github.com/maxkimambo/devtasks/cmd"
	"github.com/maxkimambo/devtasks/internal/errors"
	"github.com/maxkimambo/devtasks/internal/logger"
	"github.com/maxkimambo/devtasks/internal/tasks"
)

func main() {
	registry := tasks.NewDefaultRegistry()

	if err := cmd.Execute(context.Background(), registry, cmd.DefaultExecutor); err != nil {
		// A failing task has already reported through its own output
		if msg := errors.DisplayError(err); msg != "" {
			logger.Error(msg)
		}
		os.Exit(errors.ExitCode(err))
	}
}
