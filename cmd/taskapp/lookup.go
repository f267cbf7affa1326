package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kokumai1113/task-app/core"
)

func newProjectsCmd() *cobra.Command {
	return newOptionsCmd("projects", "List projects", core.Adapter.ListProjects)
}

func newExercisesCmd() *cobra.Command {
	return newOptionsCmd("exercises", "List exercises", core.Adapter.ListExercises)
}

// newOptionsCmd builds a listing command for one reference collection.
// The list argument is a method expression over the adapter interface.
func newOptionsCmd(use, short string, list func(core.Adapter, context.Context) ([]core.Option, error)) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			adapter, _, err := buildAdapter()
			if err != nil {
				return err
			}

			options, err := list(adapter, context.Background())
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, options)
			case "table":
				outputOptionsTable(cmd, options)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func outputOptionsTable(cmd *cobra.Command, options []core.Option) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name"})
	for _, opt := range options {
		t.AppendRow(table.Row{opt.ID, opt.Name})
	}
	t.Render()
}
