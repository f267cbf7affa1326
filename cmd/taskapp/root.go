package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kokumai1113/task-app/adapters/notion"
	"github.com/kokumai1113/task-app/config"
	"github.com/kokumai1113/task-app/core"
)

var rootCmd = &cobra.Command{
	Use:   "taskapp",
	Short: "taskapp - A personal task list and workout log on Notion",
	Long:  "taskapp manages tasks and workout sets stored in Notion collections, over HTTP or from the terminal.",
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newTaskCmd())
	rootCmd.AddCommand(newWorkoutCmd())
	rootCmd.AddCommand(newProjectsCmd())
	rootCmd.AddCommand(newExercisesCmd())
}

// buildAdapter wires configuration into a ready record store client.
// Every command goes through here so they all fail the same way on
// incomplete configuration.
func buildAdapter() (core.Adapter, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	client, err := notion.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// resolveOptionRef turns a user-entered reference into a record ID.
// Names match case-insensitively against the loaded options; anything
// that matches no option is treated as an ID and normalized.
func resolveOptionRef(options []core.Option, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("empty reference")
	}
	for _, opt := range options {
		if strings.EqualFold(opt.Name, ref) || opt.ID == ref {
			return opt.ID, nil
		}
	}
	return core.NormalizeID(ref), nil
}
