package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kokumai1113/task-app/core"
)

func newWorkoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Log and review workout sets",
	}
	cmd.AddCommand(newWorkoutAddCmd())
	cmd.AddCommand(newWorkoutListCmd())
	return cmd
}

func newWorkoutAddCmd() *cobra.Command {
	var (
		exercise string
		weight   float64
		reps     int
		sets     int
		date     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a workout set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if weight < 0 {
				return errors.New("--weight cannot be negative")
			}
			if reps < 1 {
				return errors.New("--reps must be at least 1")
			}
			if sets < 0 {
				return errors.New("--sets cannot be negative")
			}

			var day time.Time
			if date != "" {
				var err error
				day, err = time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid date: %s (expected 2006-01-02)", date)
				}
			}

			adapter, _, err := buildAdapter()
			if err != nil {
				return err
			}
			ctx := context.Background()

			options, err := adapter.ListExercises(ctx)
			if err != nil {
				return err
			}
			exerciseID, err := resolveOptionRef(options, exercise)
			if err != nil {
				return err
			}

			if err := adapter.AddWorkout(ctx, exerciseID, weight, reps, sets, day); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Workout saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&exercise, "exercise", "", "Exercise name or ID")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().IntVar(&reps, "reps", 0, "Repetitions per set")
	cmd.Flags().IntVar(&sets, "sets", 0, "Number of sets")
	cmd.Flags().StringVar(&date, "date", "", "Workout date (2006-01-02, defaults to today)")
	_ = cmd.MarkFlagRequired("exercise")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("reps")

	return cmd
}

func newWorkoutListCmd() *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged workout sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			adapter, _, err := buildAdapter()
			if err != nil {
				return err
			}
			ctx := context.Background()

			var lookup core.Lookup
			if exercises, err := adapter.ListExercises(ctx); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: exercises could not be loaded: %v\n", err)
			} else {
				lookup = core.OptionsToLookup(exercises)
			}

			rows, err := adapter.ListWorkouts(ctx, limit, lookup)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, rows)
			case "table":
				outputWorkoutTable(cmd, rows)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", core.WorkoutHistoryPageSize, "Maximum number of sets")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func outputWorkoutTable(cmd *cobra.Command, rows []core.WorkoutRow) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Date", "Exercise", "Weight (kg)", "Reps", "Sets"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.Date, row.Exercise, row.Weight, row.Reps, row.Sets})
	}
	t.Render()
}
