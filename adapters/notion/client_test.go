package notion

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kokumai1113/task-app/config"
	"github.com/kokumai1113/task-app/core"
)

// fakeAPI implements RecordAPI with programmable calls. A call whose
// function is unset was not expected by the test and panics.
type fakeAPI struct {
	getDatabase   func(ctx context.Context, databaseID string) (*Database, error)
	queryDatabase func(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error)
	createPage    func(ctx context.Context, req *CreatePageRequest) (*Page, error)
	updatePage    func(ctx context.Context, pageID string, properties PropertyMap) (*Page, error)
}

func (f *fakeAPI) GetDatabase(ctx context.Context, databaseID string) (*Database, error) {
	if f.getDatabase == nil {
		panic("unexpected GetDatabase call")
	}
	return f.getDatabase(ctx, databaseID)
}

func (f *fakeAPI) QueryDatabase(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
	if f.queryDatabase == nil {
		panic("unexpected QueryDatabase call")
	}
	return f.queryDatabase(ctx, databaseID, req)
}

func (f *fakeAPI) CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error) {
	if f.createPage == nil {
		panic("unexpected CreatePage call")
	}
	return f.createPage(ctx, req)
}

func (f *fakeAPI) UpdatePage(ctx context.Context, pageID string, properties PropertyMap) (*Page, error) {
	if f.updatePage == nil {
		panic("unexpected UpdatePage call")
	}
	return f.updatePage(ctx, pageID, properties)
}

func testConfig() *config.Config {
	return &config.Config{
		NotionToken:  "secret_test",
		DatabaseID:   "db-tasks",
		WorkoutDBID:  "db-workouts",
		ProjectDBID:  "db-projects",
		ExerciseDBID: "db-exercises",
	}
}

func newTestClient(t *testing.T, api RecordAPI, opts ...Option) *Client {
	t.Helper()
	c, err := NewClient(testConfig(), append([]Option{WithRecordAPI(api)}, opts...)...)
	if err != nil {
		t.Fatalf("NewClient returned unexpected error: %v", err)
	}
	return c
}

func taskDatabase() *Database {
	return &Database{
		ID: "db-tasks",
		Properties: map[string]PropertyDef{
			"Task Name": {Type: "title"},
			"Date":      {Type: "date"},
			"Project":   {Type: "relation"},
			"Status":    {Type: "status"},
			"Notes":     {Type: "rich_text"},
		},
	}
}

func titleOf(t *testing.T, props PropertyMap, name string) string {
	t.Helper()
	v, ok := props[name]
	if !ok || len(v.Title) == 0 || v.Title[0].Text == nil {
		t.Fatalf("Expected a title property %q, got %+v", name, props)
	}
	return v.Title[0].Text.Content
}

func numberOf(t *testing.T, props PropertyMap, name string) float64 {
	t.Helper()
	v, ok := props[name]
	if !ok || v.Number == nil {
		t.Fatalf("Expected a number property %q, got %+v", name, props)
	}
	return *v.Number
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(nil); err == nil {
		t.Error("Expected an error for a nil config")
	}

	cfg := testConfig()
	cfg.NotionToken = ""
	if _, err := NewClient(cfg); err == nil {
		t.Error("Expected an error for a missing token")
	}

	cfg = testConfig()
	cfg.ProjectDBID = ""
	if _, err := NewClient(cfg); err == nil {
		t.Error("Expected an error for a missing project db id")
	}

	if _, err := NewClient(testConfig(), WithRecordAPI(&fakeAPI{})); err != nil {
		t.Errorf("Expected a complete config to construct, got: %v", err)
	}
}

func TestNewClientNormalizesIDs(t *testing.T) {
	cfg := testConfig()
	cfg.DatabaseID = "https://www.notion.so/myspace/2c9998b2a5188049858fc05be5b60c99?v=abc123"

	var gotDB string
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return taskDatabase(), nil
		},
		queryDatabase: func(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
			gotDB = databaseID
			return &QueryResponse{Results: []Page{}}, nil
		},
	}

	c, err := NewClient(cfg, WithRecordAPI(api))
	if err != nil {
		t.Fatalf("NewClient returned unexpected error: %v", err)
	}
	if _, err := c.ListTasks(context.Background(), 10, nil); err != nil {
		t.Fatalf("ListTasks returned unexpected error: %v", err)
	}

	if gotDB != "2c9998b2a5188049858fc05be5b60c99" {
		t.Errorf("Expected the share URL to collapse to its id, got %q", gotDB)
	}
}

func TestAddTask(t *testing.T) {
	var gotReq *CreatePageRequest
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return taskDatabase(), nil
		},
		createPage: func(ctx context.Context, req *CreatePageRequest) (*Page, error) {
			gotReq = req
			return &Page{ID: "new-task"}, nil
		},
	}
	c := newTestClient(t, api)

	due := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if err := c.AddTask(context.Background(), "Buy milk", due, "proj-1"); err != nil {
		t.Fatalf("AddTask returned unexpected error: %v", err)
	}

	if gotReq.Parent.DatabaseID != "db-tasks" {
		t.Errorf("Expected parent db-tasks, got %q", gotReq.Parent.DatabaseID)
	}
	if got := titleOf(t, gotReq.Properties, "Task Name"); got != "Buy milk" {
		t.Errorf("Expected title Buy milk, got %q", got)
	}
	date := gotReq.Properties["Date"].Date
	if date == nil || date.Start != "2024-03-09" {
		t.Errorf("Expected date 2024-03-09, got %+v", date)
	}
	rel := gotReq.Properties["Project"].Relation
	if len(rel) != 1 || rel[0].ID != "proj-1" {
		t.Errorf("Expected project relation proj-1, got %+v", rel)
	}
}

func TestAddTaskMinimal(t *testing.T) {
	var gotReq *CreatePageRequest
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return taskDatabase(), nil
		},
		createPage: func(ctx context.Context, req *CreatePageRequest) (*Page, error) {
			gotReq = req
			return &Page{ID: "new-task"}, nil
		},
	}
	c := newTestClient(t, api)

	if err := c.AddTask(context.Background(), "Just a name", time.Time{}, ""); err != nil {
		t.Fatalf("AddTask returned unexpected error: %v", err)
	}

	if len(gotReq.Properties) != 1 {
		t.Errorf("Expected only the title property, got %+v", gotReq.Properties)
	}
	if _, ok := gotReq.Properties["Date"]; ok {
		t.Error("An unset due date should not appear in the record")
	}
	if _, ok := gotReq.Properties["Project"]; ok {
		t.Error("An unset project should not appear in the record")
	}
}

func TestAddTaskDiscoveryFallback(t *testing.T) {
	var gotReq *CreatePageRequest
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return nil, errors.New("metadata unavailable")
		},
		createPage: func(ctx context.Context, req *CreatePageRequest) (*Page, error) {
			gotReq = req
			return &Page{ID: "new-task"}, nil
		},
	}
	policy := core.RolePolicy{
		Fallback: core.SchemaMap{
			core.RoleTitle: "名前",
			core.RoleDate:  "期日",
		},
	}
	c := newTestClient(t, api, WithTaskPolicy(policy))

	due := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if err := c.AddTask(context.Background(), "Buy milk", due, ""); err != nil {
		t.Fatalf("AddTask should still write with fallback names, got: %v", err)
	}

	if got := titleOf(t, gotReq.Properties, "名前"); got != "Buy milk" {
		t.Errorf("Expected the fallback title property, got %+v", gotReq.Properties)
	}
	if gotReq.Properties["期日"].Date == nil {
		t.Errorf("Expected the fallback date property, got %+v", gotReq.Properties)
	}
}

func TestAddTaskCreateError(t *testing.T) {
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return taskDatabase(), nil
		},
		createPage: func(ctx context.Context, req *CreatePageRequest) (*Page, error) {
			return nil, errors.New("boom")
		},
	}
	c := newTestClient(t, api)

	err := c.AddTask(context.Background(), "Buy milk", time.Time{}, "")
	if err == nil {
		t.Fatal("Expected the create failure to surface")
	}
	if !strings.Contains(err.Error(), "adding task") {
		t.Errorf("Expected a wrapped error, got: %v", err)
	}
}

func TestAddWorkout(t *testing.T) {
	var gotReq *CreatePageRequest
	api := &fakeAPI{
		createPage: func(ctx context.Context, req *CreatePageRequest) (*Page, error) {
			gotReq = req
			return &Page{ID: "new-set"}, nil
		},
	}
	clock := func() time.Time { return time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC) }
	c := newTestClient(t, api, WithClock(clock))

	if err := c.AddWorkout(context.Background(), "ex-1", 72.5, 8, 3, time.Time{}); err != nil {
		t.Fatalf("AddWorkout returned unexpected error: %v", err)
	}

	if gotReq.Parent.DatabaseID != "db-workouts" {
		t.Errorf("Expected parent db-workouts, got %q", gotReq.Parent.DatabaseID)
	}
	if got := titleOf(t, gotReq.Properties, "名前"); got != "2024-03-09 Workout" {
		t.Errorf("Expected a dated record title, got %q", got)
	}
	date := gotReq.Properties["日付"].Date
	if date == nil || date.Start != "2024-03-09" {
		t.Errorf("Expected date 2024-03-09, got %+v", date)
	}
	rel := gotReq.Properties["workout list"].Relation
	if len(rel) != 1 || rel[0].ID != "ex-1" {
		t.Errorf("Expected exercise relation ex-1, got %+v", rel)
	}
	if got := numberOf(t, gotReq.Properties, "重量 kg"); got != 72.5 {
		t.Errorf("Expected weight 72.5, got %v", got)
	}
	if got := numberOf(t, gotReq.Properties, "reps"); got != 8 {
		t.Errorf("Expected reps 8, got %v", got)
	}
	// Sets have no property in the default collection and must stay off
	// the wire entirely.
	if len(gotReq.Properties) != 5 {
		t.Errorf("Expected exactly 5 properties, got %+v", gotReq.Properties)
	}
}

func TestAddWorkoutExplicitDay(t *testing.T) {
	var gotReq *CreatePageRequest
	api := &fakeAPI{
		createPage: func(ctx context.Context, req *CreatePageRequest) (*Page, error) {
			gotReq = req
			return &Page{ID: "new-set"}, nil
		},
	}
	c := newTestClient(t, api)

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if err := c.AddWorkout(context.Background(), "ex-1", 60, 10, 0, day); err != nil {
		t.Fatalf("AddWorkout returned unexpected error: %v", err)
	}

	if got := titleOf(t, gotReq.Properties, "名前"); got != "2024-01-15 Workout" {
		t.Errorf("Expected the given day in the title, got %q", got)
	}
}

func TestAddWorkoutMappedSets(t *testing.T) {
	var gotReq *CreatePageRequest
	api := &fakeAPI{
		createPage: func(ctx context.Context, req *CreatePageRequest) (*Page, error) {
			gotReq = req
			return &Page{ID: "new-set"}, nil
		},
	}
	measures := map[string]string{
		MeasureWeight: "Weight",
		MeasureReps:   "Reps",
		MeasureSets:   "Sets",
	}
	schema := core.SchemaMap{
		core.RoleTitle:    "Name",
		core.RoleDate:     "Date",
		core.RoleRelation: "Exercise",
	}
	c := newTestClient(t, api, WithWorkoutSchema(schema, measures))

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if err := c.AddWorkout(context.Background(), "ex-1", 60, 10, 3, day); err != nil {
		t.Fatalf("AddWorkout returned unexpected error: %v", err)
	}

	if got := numberOf(t, gotReq.Properties, "Sets"); got != 3 {
		t.Errorf("Expected mapped sets 3, got %v", got)
	}
}

func TestListTasks(t *testing.T) {
	var gotDB string
	var gotReq *QueryRequest
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return taskDatabase(), nil
		},
		queryDatabase: func(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
			gotDB = databaseID
			gotReq = req
			return &QueryResponse{Results: []Page{
				{ID: "t1", Properties: PropertyMap{
					"Task Name": {Title: []RichText{{Text: &TextContent{Content: "Buy milk"}}}},
					"Date":      {Date: &DateValue{Start: "2024-03-09"}},
					"Project":   {Relation: []RelationRef{{ID: "proj-1"}}},
					"Status":    {Status: &StatusValue{Name: "進行中"}},
				}},
				{ID: "t2", Properties: PropertyMap{
					"Task Name": {Title: []RichText{{Text: &TextContent{Content: "Call bank"}}}},
				}},
			}}, nil
		},
	}
	c := newTestClient(t, api)

	rows, err := c.ListTasks(context.Background(), 10, core.Lookup{"proj-1": "Household"})
	if err != nil {
		t.Fatalf("ListTasks returned unexpected error: %v", err)
	}

	if gotDB != "db-tasks" {
		t.Errorf("Expected query against db-tasks, got %q", gotDB)
	}
	if gotReq.PageSize != 10 {
		t.Errorf("Expected page size 10, got %d", gotReq.PageSize)
	}
	if len(gotReq.Sorts) != 1 || gotReq.Sorts[0].Property != "Date" || gotReq.Sorts[0].Direction != "descending" {
		t.Errorf("Expected a descending date sort, got %+v", gotReq.Sorts)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	first := rows[0]
	if first.Task != "Buy milk" || first.Project != "Household" || first.State != core.StatusInProgress {
		t.Errorf("First row not assembled correctly: %+v", first)
	}
	second := rows[1]
	if second.Project != core.NoRelation || second.State != core.StatusUnknown {
		t.Errorf("Sparse row should degrade to defaults, got: %+v", second)
	}
}

func TestListTasksClampsPageSize(t *testing.T) {
	var sizes []int
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return taskDatabase(), nil
		},
		queryDatabase: func(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
			sizes = append(sizes, req.PageSize)
			return &QueryResponse{Results: []Page{}}, nil
		},
	}
	c := newTestClient(t, api)

	for _, size := range []int{0, -5, 500} {
		if _, err := c.ListTasks(context.Background(), size, nil); err != nil {
			t.Fatalf("ListTasks returned unexpected error: %v", err)
		}
	}

	want := []int{core.DefaultPageSize, core.DefaultPageSize, core.MaxPageSize}
	for i, size := range sizes {
		if size != want[i] {
			t.Errorf("Expected page size %d for call %d, got %d", want[i], i, size)
		}
	}
}

func TestListTasksFallbackSort(t *testing.T) {
	var gotReq *QueryRequest
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return nil, errors.New("metadata unavailable")
		},
		queryDatabase: func(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
			gotReq = req
			return &QueryResponse{Results: []Page{}}, nil
		},
	}
	policy := core.RolePolicy{
		Fallback: core.SchemaMap{
			core.RoleTitle: "名前",
			core.RoleDate:  "期日",
		},
	}
	c := newTestClient(t, api, WithTaskPolicy(policy))

	if _, err := c.ListTasks(context.Background(), 10, nil); err != nil {
		t.Fatalf("ListTasks returned unexpected error: %v", err)
	}

	if len(gotReq.Sorts) != 1 || gotReq.Sorts[0].Property != "期日" {
		t.Errorf("Expected the fallback date property in the sort, got %+v", gotReq.Sorts)
	}
}

func TestListTasksQueryError(t *testing.T) {
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return taskDatabase(), nil
		},
		queryDatabase: func(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
			return nil, errors.New("boom")
		},
	}
	c := newTestClient(t, api)

	_, err := c.ListTasks(context.Background(), 10, nil)
	if err == nil {
		t.Fatal("Expected the query failure to surface")
	}
	if !strings.Contains(err.Error(), "listing tasks") {
		t.Errorf("Expected a wrapped error, got: %v", err)
	}
}

func TestListWorkouts(t *testing.T) {
	var gotDB string
	var gotReq *QueryRequest
	api := &fakeAPI{
		queryDatabase: func(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
			gotDB = databaseID
			gotReq = req
			weight := 72.5
			reps := 8.0
			return &QueryResponse{Results: []Page{
				{ID: "w1", Properties: PropertyMap{
					"名前":           {Title: []RichText{{Text: &TextContent{Content: "2024-03-09 Workout"}}}},
					"日付":           {Date: &DateValue{Start: "2024-03-09"}},
					"workout list": {Relation: []RelationRef{{ID: "ex-1"}}},
					"重量 kg":        {Number: &weight},
					"reps":         {Number: &reps},
				}},
			}}, nil
		},
	}
	c := newTestClient(t, api)

	rows, err := c.ListWorkouts(context.Background(), 20, core.Lookup{"ex-1": "Bench Press"})
	if err != nil {
		t.Fatalf("ListWorkouts returned unexpected error: %v", err)
	}

	if gotDB != "db-workouts" {
		t.Errorf("Expected query against db-workouts, got %q", gotDB)
	}
	if len(gotReq.Sorts) != 1 || gotReq.Sorts[0].Property != "日付" || gotReq.Sorts[0].Direction != "descending" {
		t.Errorf("Expected a descending date sort, got %+v", gotReq.Sorts)
	}

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Exercise != "Bench Press" || row.Weight != 72.5 || row.Reps != 8 || row.Sets != 0 {
		t.Errorf("Row not assembled correctly: %+v", row)
	}
}

func TestListWorkoutsQueryError(t *testing.T) {
	api := &fakeAPI{
		queryDatabase: func(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
			return nil, errors.New("boom")
		},
	}
	c := newTestClient(t, api)

	_, err := c.ListWorkouts(context.Background(), 20, nil)
	if err == nil {
		t.Fatal("Expected the query failure to surface")
	}
	if !strings.Contains(err.Error(), "listing workouts") {
		t.Errorf("Expected a wrapped error, got: %v", err)
	}
}

func TestListProjects(t *testing.T) {
	var gotDB string
	var gotReq *QueryRequest
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			if databaseID != "db-projects" {
				t.Errorf("Expected metadata for db-projects, got %q", databaseID)
			}
			return &Database{ID: "db-projects", Properties: map[string]PropertyDef{
				"Name":  {Type: "title"},
				"Notes": {Type: "rich_text"},
			}}, nil
		},
		queryDatabase: func(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
			gotDB = databaseID
			gotReq = req
			return &QueryResponse{Results: []Page{
				{ID: "proj-1", Properties: PropertyMap{
					"Name": {Title: []RichText{{Text: &TextContent{Content: "Household"}}}},
				}},
				{ID: "proj-2", Properties: PropertyMap{
					"Name": {Title: []RichText{{Text: &TextContent{Content: "Work"}}}},
				}},
			}}, nil
		},
	}
	c := newTestClient(t, api)

	options, err := c.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects returned unexpected error: %v", err)
	}

	if gotDB != "db-projects" {
		t.Errorf("Expected query against db-projects, got %q", gotDB)
	}
	if gotReq.PageSize != core.MaxPageSize {
		t.Errorf("Expected the maximum page size, got %d", gotReq.PageSize)
	}
	if len(gotReq.Sorts) != 1 || gotReq.Sorts[0].Property != "Name" || gotReq.Sorts[0].Direction != "ascending" {
		t.Errorf("Expected an ascending title sort, got %+v", gotReq.Sorts)
	}

	if len(options) != 2 || options[0].Name != "Household" || options[1].Name != "Work" {
		t.Errorf("Options not assembled correctly: %+v", options)
	}
}

func TestListProjectsDiscoveryFailure(t *testing.T) {
	var gotReq *QueryRequest
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return nil, errors.New("metadata unavailable")
		},
		queryDatabase: func(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
			gotReq = req
			return &QueryResponse{Results: []Page{
				{ID: "proj-2", Properties: PropertyMap{
					"Name": {Title: []RichText{{Text: &TextContent{Content: "Zeta"}}}},
				}},
				{ID: "proj-1", Properties: PropertyMap{
					"Name": {Title: []RichText{{Text: &TextContent{Content: "Alpha"}}}},
				}},
			}}, nil
		},
	}
	c := newTestClient(t, api)

	options, err := c.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects returned unexpected error: %v", err)
	}

	// Sorting by a guessed property name would fail the whole query, so
	// the request must go out unsorted and the ordering happen here.
	if len(gotReq.Sorts) != 0 {
		t.Errorf("Expected an unsorted query after failed discovery, got %+v", gotReq.Sorts)
	}
	if len(options) != 2 || options[0].Name != "Alpha" || options[1].Name != "Zeta" {
		t.Errorf("Expected options sorted in memory, got %+v", options)
	}
}

func TestListExercises(t *testing.T) {
	var gotDB string
	var gotReq *QueryRequest
	api := &fakeAPI{
		queryDatabase: func(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
			gotDB = databaseID
			gotReq = req
			return &QueryResponse{Results: []Page{
				{ID: "ex-1", Properties: PropertyMap{
					"名前": {Title: []RichText{{Text: &TextContent{Content: "Bench Press"}}}},
				}},
			}}, nil
		},
	}
	c := newTestClient(t, api)

	options, err := c.ListExercises(context.Background())
	if err != nil {
		t.Fatalf("ListExercises returned unexpected error: %v", err)
	}

	if gotDB != "db-exercises" {
		t.Errorf("Expected query against db-exercises, got %q", gotDB)
	}
	if len(gotReq.Sorts) != 1 || gotReq.Sorts[0].Property != "名前" || gotReq.Sorts[0].Direction != "ascending" {
		t.Errorf("Expected an ascending sort on the known title, got %+v", gotReq.Sorts)
	}
	if len(options) != 1 || options[0].Name != "Bench Press" {
		t.Errorf("Options not assembled correctly: %+v", options)
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	var gotID string
	var gotProps PropertyMap
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return taskDatabase(), nil
		},
		updatePage: func(ctx context.Context, pageID string, properties PropertyMap) (*Page, error) {
			gotID = pageID
			gotProps = properties
			return &Page{ID: pageID}, nil
		},
	}
	c := newTestClient(t, api)

	if err := c.UpdateTaskStatus(context.Background(), "task-1", core.StatusDone); err != nil {
		t.Fatalf("UpdateTaskStatus returned unexpected error: %v", err)
	}

	if gotID != "task-1" {
		t.Errorf("Expected update of task-1, got %q", gotID)
	}
	v := gotProps["Status"]
	if v.Status == nil || v.Status.Name != "完了" {
		t.Errorf("Expected status 完了, got %+v", v)
	}
	if v.Select != nil {
		t.Errorf("A status-typed property must not carry a select value: %+v", v)
	}
}

func TestUpdateTaskStatusSelectTyped(t *testing.T) {
	var gotProps PropertyMap
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return &Database{ID: "db-tasks", Properties: map[string]PropertyDef{
				"Task Name": {Type: "title"},
				"Status":    {Type: "select"},
			}}, nil
		},
		updatePage: func(ctx context.Context, pageID string, properties PropertyMap) (*Page, error) {
			gotProps = properties
			return &Page{ID: pageID}, nil
		},
	}
	c := newTestClient(t, api)

	if err := c.UpdateTaskStatus(context.Background(), "task-1", core.StatusInProgress); err != nil {
		t.Fatalf("UpdateTaskStatus returned unexpected error: %v", err)
	}

	v := gotProps["Status"]
	if v.Select == nil || v.Select.Name != "進行中" {
		t.Errorf("Expected select 進行中, got %+v", v)
	}
	if v.Status != nil {
		t.Errorf("A select-typed property must not carry a status value: %+v", v)
	}
}

func TestUpdateTaskStatusNoField(t *testing.T) {
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return &Database{ID: "db-tasks", Properties: map[string]PropertyDef{
				"Task Name": {Type: "title"},
				"Date":      {Type: "date"},
			}}, nil
		},
	}
	c := newTestClient(t, api)

	err := c.UpdateTaskStatus(context.Background(), "task-1", core.StatusDone)
	if !errors.Is(err, ErrNoStatusField) {
		t.Errorf("Expected ErrNoStatusField, got: %v", err)
	}
}

func TestUpdateTaskStatusUnknown(t *testing.T) {
	c := newTestClient(t, &fakeAPI{})

	err := c.UpdateTaskStatus(context.Background(), "task-1", core.StatusUnknown)
	if err == nil {
		t.Fatal("Expected an error for a status without a write label")
	}
	if !strings.Contains(err.Error(), "no writable label") {
		t.Errorf("Expected the label error, got: %v", err)
	}
}

func TestUpdateTaskStatusNormalizesID(t *testing.T) {
	var gotID string
	api := &fakeAPI{
		getDatabase: func(ctx context.Context, databaseID string) (*Database, error) {
			return taskDatabase(), nil
		},
		updatePage: func(ctx context.Context, pageID string, properties PropertyMap) (*Page, error) {
			gotID = pageID
			return &Page{ID: pageID}, nil
		},
	}
	c := newTestClient(t, api)

	url := "https://www.notion.so/Buy-milk-8a3c1f2b4d5e60718293a4b5c6d7e8f9"
	if err := c.UpdateTaskStatus(context.Background(), url, core.StatusDone); err != nil {
		t.Fatalf("UpdateTaskStatus returned unexpected error: %v", err)
	}

	if gotID != "8a3c1f2b4d5e60718293a4b5c6d7e8f9" {
		t.Errorf("Expected the page URL to collapse to its id, got %q", gotID)
	}
}
