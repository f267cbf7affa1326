package core

// Relation display placeholders
const (
	// NoRelation is shown when a record carries no reference at all
	NoRelation = "-"

	// UnknownProject is shown when a task references a project that
	// cannot be resolved to a name
	UnknownProject = "Unknown Project"

	// UnknownExercise is shown when a workout references an exercise
	// that cannot be resolved to a name
	UnknownExercise = "Unknown"
)

// UntitledOption is the display name for reference records without a title
const UntitledOption = "Untitled"

// Option is one selectable record from a reference collection
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Lookup maps record IDs to display names
type Lookup map[string]string

// OptionsToLookup flattens options into an ID-to-name lookup
func OptionsToLookup(options []Option) Lookup {
	m := make(Lookup, len(options))
	for _, o := range options {
		m[o.ID] = o.Name
	}
	return m
}

// Resolve turns a relation reference into a display name. An empty id
// means the record carries no reference; an id missing from the lookup
// (including a nil lookup) resolves to the unknown label.
func (l Lookup) Resolve(id, unknownLabel string) string {
	if id == "" {
		return NoRelation
	}
	if name, ok := l[id]; ok {
		return name
	}
	return unknownLabel
}

// TaskRow is one task prepared for display
type TaskRow struct {
	ID      string `json:"id"`
	Task    string `json:"task"`
	Date    string `json:"date"`
	Project string `json:"project"`
	Status  string `json:"status"`
	State   Status `json:"-"`
}

// WorkoutRow is one workout set prepared for display
type WorkoutRow struct {
	Exercise string  `json:"exercise"`
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Sets     int     `json:"sets"`
}
