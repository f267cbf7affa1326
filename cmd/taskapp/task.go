package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kokumai1113/task-app/core"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskDoneCmd())
	cmd.AddCommand(newTaskStartCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var (
		name    string
		date    string
		project string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name = strings.TrimSpace(name)
			if name == "" {
				return errors.New("--name is required")
			}

			var due time.Time
			if date != "" {
				var err error
				due, err = time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid date: %s (expected 2006-01-02)", date)
				}
			}

			adapter, _, err := buildAdapter()
			if err != nil {
				return err
			}
			ctx := context.Background()

			projectID := ""
			if project != "" {
				options, err := adapter.ListProjects(ctx)
				if err != nil {
					return err
				}
				projectID, err = resolveOptionRef(options, project)
				if err != nil {
					return err
				}
			}

			if err := adapter.AddTask(ctx, name, due, projectID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully added: %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&date, "date", "", "Due date (2006-01-02)")
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")

	return cmd
}

func newTaskListCmd() *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			adapter, _, err := buildAdapter()
			if err != nil {
				return err
			}
			ctx := context.Background()

			// The project lookup only decorates rows; listing still
			// works when the reference collection is unreachable.
			var lookup core.Lookup
			if projects, err := adapter.ListProjects(ctx); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: projects could not be loaded: %v\n", err)
			} else {
				lookup = core.OptionsToLookup(projects)
			}

			rows, err := adapter.ListTasks(ctx, limit, lookup)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, rows)
			case "table":
				outputTaskTable(cmd, rows)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", core.DefaultPageSize, "Maximum number of tasks")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func newTaskDoneCmd() *cobra.Command {
	return newTaskStatusCmd("done <id>", "Mark a task as done", core.StatusDone)
}

func newTaskStartCmd() *cobra.Command {
	return newTaskStatusCmd("start <id>", "Mark a task as in progress", core.StatusInProgress)
}

func newTaskStatusCmd(use, short string, target core.Status) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, _, err := buildAdapter()
			if err != nil {
				return err
			}
			if err := adapter.UpdateTaskStatus(context.Background(), args[0], target); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated!")
			return nil
		},
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func outputTaskTable(cmd *cobra.Command, rows []core.TaskRow) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Task", "Date", "Project", "Status"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.ID, row.Task, row.Date, row.Project, row.Status})
	}
	t.Render()
}
