package notion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/kokumai1113/task-app/config"
	"github.com/kokumai1113/task-app/core"
)

// Measure keys of the workout number map
const (
	MeasureWeight = "weight"
	MeasureReps   = "reps"
	MeasureSets   = "sets"
)

// DefaultWorkoutMeasures maps logical measures to the property names the
// reference collection uses. There is deliberately no sets entry: the
// collection has no such property, and the API rejects records that name
// unknown properties.
var DefaultWorkoutMeasures = map[string]string{
	MeasureWeight: "重量 kg",
	MeasureReps:   "reps",
}

// ErrNoStatusField is returned when a status update targets a collection
// without a status property
var ErrNoStatusField = errors.New("collection has no status property")

// Client is the Notion-backed implementation of core.Adapter
type Client struct {
	api RecordAPI

	tasksDB     string
	workoutsDB  string
	projectsDB  string
	exercisesDB string

	taskPolicy      core.RolePolicy
	workoutSchema   core.SchemaMap
	workoutMeasures map[string]string

	now func() time.Time
}

// Option configures a Client
type Option func(*Client)

// WithRecordAPI selects the API implementation the client talks through
func WithRecordAPI(api RecordAPI) Option {
	return func(c *Client) {
		c.api = api
	}
}

// WithTaskPolicy overrides how task collection properties map to roles
func WithTaskPolicy(policy core.RolePolicy) Option {
	return func(c *Client) {
		c.taskPolicy = policy
	}
}

// WithWorkoutSchema overrides the fixed workout schema and its measures
func WithWorkoutSchema(schema core.SchemaMap, measures map[string]string) Option {
	return func(c *Client) {
		c.workoutSchema = schema
		c.workoutMeasures = measures
	}
}

// WithClock fixes the time source
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient validates the configuration and builds the adapter. Missing
// secrets are the one construction-time failure; everything past this
// point degrades or reports instead of failing fatally.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("notion: nil config")
	}
	if cfg.NotionToken == "" || cfg.DatabaseID == "" || cfg.ProjectDBID == "" {
		return nil, errors.New("notion: token, database id and project db id are all required")
	}

	workoutsDB := cfg.WorkoutDBID
	if workoutsDB == "" {
		workoutsDB = cfg.DatabaseID
	}

	c := &Client{
		tasksDB:         core.NormalizeID(cfg.DatabaseID),
		workoutsDB:      core.NormalizeID(workoutsDB),
		projectsDB:      core.NormalizeID(cfg.ProjectDBID),
		exercisesDB:     core.NormalizeID(cfg.ExerciseDBID),
		taskPolicy:      core.DefaultTaskPolicy(),
		workoutSchema:   core.DefaultWorkoutSchema,
		workoutMeasures: DefaultWorkoutMeasures,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.api == nil {
		c.api = NewTransport(cfg.NotionToken, WithAPILogger(NewAPILogger(cfg.DebugEnabled)))
	}
	return c, nil
}

// AddTask writes a task record. The due date and project reference are
// optional; absent inputs are left out of the record entirely.
func (c *Client) AddTask(ctx context.Context, name string, due time.Time, projectID string) error {
	info := c.taskSchema(ctx)

	props := buildProperties(info.roles, name, due, core.NormalizeID(projectID), nil)
	_, err := c.api.CreatePage(ctx, &CreatePageRequest{
		Parent:     Parent{DatabaseID: c.tasksDB},
		Properties: props,
	})
	if err != nil {
		return fmt.Errorf("adding task: %w", err)
	}
	return nil
}

// AddWorkout writes one workout set. A zero day defaults to today, and the
// record title is derived from the date.
func (c *Client) AddWorkout(ctx context.Context, exerciseID string, weight float64, reps, sets int, day time.Time) error {
	if day.IsZero() {
		day = c.now()
	}
	title := day.Format(time.DateOnly) + " Workout"

	numbers := map[string]float64{}
	if field := c.workoutMeasures[MeasureWeight]; field != "" {
		numbers[field] = weight
	}
	if field := c.workoutMeasures[MeasureReps]; field != "" {
		numbers[field] = float64(reps)
	}
	if field := c.workoutMeasures[MeasureSets]; field != "" {
		numbers[field] = float64(sets)
	}

	props := buildProperties(c.workoutSchema, title, day, core.NormalizeID(exerciseID), numbers)
	_, err := c.api.CreatePage(ctx, &CreatePageRequest{
		Parent:     Parent{DatabaseID: c.workoutsDB},
		Properties: props,
	})
	if err != nil {
		return fmt.Errorf("adding workout: %w", err)
	}
	return nil
}

// ListProjects returns the selectable projects sorted by name
func (c *Client) ListProjects(ctx context.Context) ([]core.Option, error) {
	return c.listOptions(ctx, c.projectsDB, "projects", "")
}

// ListExercises returns the selectable exercises sorted by name
func (c *Client) ListExercises(ctx context.Context) ([]core.Option, error) {
	return c.listOptions(ctx, c.exercisesDB, "exercises", c.workoutSchema[core.RoleTitle])
}

// ListTasks returns the newest tasks first
func (c *Client) ListTasks(ctx context.Context, pageSize int, projects core.Lookup) ([]core.TaskRow, error) {
	info := c.taskSchema(ctx)

	req := &QueryRequest{PageSize: core.ClampPageSize(pageSize)}
	if field := info.roles[core.RoleDate]; field != "" {
		req.Sorts = []Sort{{Property: field, Direction: wireDirection(core.SortDesc)}}
	}

	resp, err := c.api.QueryDatabase(ctx, c.tasksDB, req)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return parseTaskRows(resp.Results, info.roles, projects), nil
}

// ListWorkouts returns the newest workout sets first
func (c *Client) ListWorkouts(ctx context.Context, pageSize int, exercises core.Lookup) ([]core.WorkoutRow, error) {
	req := &QueryRequest{
		PageSize: core.ClampPageSize(pageSize),
		Sorts: []Sort{
			{Property: c.workoutSchema[core.RoleDate], Direction: wireDirection(core.SortDesc)},
		},
	}

	resp, err := c.api.QueryDatabase(ctx, c.workoutsDB, req)
	if err != nil {
		return nil, fmt.Errorf("listing workouts: %w", err)
	}
	return parseWorkoutRows(resp.Results, c.workoutSchema, c.workoutMeasures, exercises), nil
}

// UpdateTaskStatus moves a task to a new state
func (c *Client) UpdateTaskStatus(ctx context.Context, taskID string, status core.Status) error {
	label := status.WriteLabel()
	if label == "" {
		return fmt.Errorf("status %v has no writable label", status)
	}

	info := c.taskSchema(ctx)
	statusField := info.roles[core.RoleStatus]
	if statusField == "" {
		return ErrNoStatusField
	}

	// Older collections type their status field as a select
	value := PropertyValue{}
	if info.propertyType(statusField, "status") == "select" {
		value.Select = &SelectValue{Name: label}
	} else {
		value.Status = &StatusValue{Name: label}
	}

	_, err := c.api.UpdatePage(ctx, core.NormalizeID(taskID), PropertyMap{statusField: value})
	if err != nil {
		return fmt.Errorf("updating task status: %w", err)
	}
	return nil
}

// taskSchema resolves the task collection's schema, falling back to the
// policy defaults when discovery fails
func (c *Client) taskSchema(ctx context.Context) schemaInfo {
	info, err := resolveSchema(ctx, c.api, c.tasksDB, c.taskPolicy)
	if err != nil {
		log.Printf("[notion] schema discovery failed for %s: %v (using defaults)", c.tasksDB, err)
	}
	return info
}

// listOptions queries a reference collection sorted by its title. With an
// empty titleField the property name is discovered first; when discovery
// fails the query runs unsorted and options are ordered in memory instead,
// since sorting by a guessed property name fails the whole query.
func (c *Client) listOptions(ctx context.Context, databaseID, label, titleField string) ([]core.Option, error) {
	if titleField == "" {
		info, err := resolveSchema(ctx, c.api, databaseID, core.RolePolicy{})
		if err != nil {
			log.Printf("[notion] schema discovery failed for %s: %v (listing unsorted)", databaseID, err)
		}
		titleField = info.roles[core.RoleTitle]
	}

	req := &QueryRequest{PageSize: core.MaxPageSize}
	if titleField != "" {
		req.Sorts = []Sort{{Property: titleField, Direction: wireDirection(core.SortAsc)}}
	}

	resp, err := c.api.QueryDatabase(ctx, databaseID, req)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", label, err)
	}

	options := parseOptions(resp.Results, titleField)
	if len(req.Sorts) == 0 {
		sort.Slice(options, func(i, j int) bool { return options[i].Name < options[j].Name })
	}
	return options, nil
}

// wireDirection translates the core sort direction to the API's wording
func wireDirection(d core.SortDirection) string {
	if d == core.SortDesc {
		return "descending"
	}
	return "ascending"
}
