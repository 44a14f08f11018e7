package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/maxkimambo/devtasks/internal/tasks"
	"github.com/maxkimambo/devtasks/internal/utils"
	"github.com/spf13/cobra"
)

func newListCmd(registry *tasks.Registry) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTasks(cmd.OutOrStdout(), registry)
		},
	}
}

func printTasks(w io.Writer, registry *tasks.Registry) error {
	table := utils.NewTableFormatter([]string{"TASK", "DESCRIPTION", "PARAMETERS"})
	for _, def := range registry.All() {
		params := strings.Join(def.Parameters(), ", ")
		if params == "" {
			params = "-"
		}
		table.AddRow([]string{def.Name, def.Short, params})
	}
	_, err := fmt.Fprint(w, table.String())
	return err
}
