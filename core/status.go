package core

import "github.com/iancoleman/strcase"

// Status is the canonical task state, independent of the labels a
// collection defines for its status options
type Status int

const (
	StatusUnknown Status = iota
	StatusNotStarted
	StatusInProgress
	StatusDone
)

// statusVocabulary maps collection labels to canonical states. Collections
// name their options freely, and in more than one language, so the table
// carries every label the app has met so far.
var statusVocabulary = map[string]Status{
	"Not started": StatusNotStarted,
	"Not Started": StatusNotStarted,
	"未着手":         StatusNotStarted,
	"To Do":       StatusNotStarted,
	"To-do":       StatusNotStarted,

	"In progress": StatusInProgress,
	"In Progress": StatusInProgress,
	"進行中":         StatusInProgress,
	"Doing":       StatusInProgress,

	"Done":      StatusDone,
	"Completed": StatusDone,
	"完了":        StatusDone,
	"Archived":  StatusDone,
}

// snakeVocabulary is keyed by snake-cased labels so spacing and casing
// variants ("in_progress", "IN PROGRESS") still resolve
var snakeVocabulary = func() map[string]Status {
	m := make(map[string]Status, len(statusVocabulary))
	for label, s := range statusVocabulary {
		m[strcase.ToSnake(label)] = s
	}
	return m
}()

// StatusWriteLabels holds the option label written back to the collection
// per state. The defaults match the reference deployment's Japanese
// options; deployments with differently named options can override them.
var StatusWriteLabels = map[Status]string{
	StatusNotStarted: "未着手",
	StatusInProgress: "進行中",
	StatusDone:       "完了",
}

// ParseStatus resolves a collection's status label to its canonical state.
// Unrecognized labels map to StatusUnknown rather than failing.
func ParseStatus(label string) Status {
	if s, ok := statusVocabulary[label]; ok {
		return s
	}
	if s, ok := snakeVocabulary[strcase.ToSnake(label)]; ok {
		return s
	}
	return StatusUnknown
}

// String returns the canonical English label
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return "In progress"
	case StatusDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// WriteLabel returns the label written to the collection for this state,
// or "" for states that are never written (StatusUnknown)
func (s Status) WriteLabel() string {
	return StatusWriteLabels[s]
}

// StatusChoices lists the states a task can be moved to, in display order
func StatusChoices() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusDone}
}
