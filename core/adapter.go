package core

import (
	"context"
	"time"
)

// Adapter defines the interface for record store adapters
type Adapter interface {
	// Write operations
	AddTask(ctx context.Context, name string, due time.Time, projectID string) error
	AddWorkout(ctx context.Context, exerciseID string, weight float64, reps, sets int, day time.Time) error
	UpdateTaskStatus(ctx context.Context, taskID string, status Status) error

	// Read operations. The lookups resolve relation references to display
	// names; a nil lookup degrades to unknown labels instead of failing.
	ListProjects(ctx context.Context) ([]Option, error)
	ListExercises(ctx context.Context) ([]Option, error)
	ListTasks(ctx context.Context, pageSize int, projects Lookup) ([]TaskRow, error)
	ListWorkouts(ctx context.Context, pageSize int, exercises Lookup) ([]WorkoutRow, error)
}
