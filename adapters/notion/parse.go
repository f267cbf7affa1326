package notion

import "github.com/kokumai1113/task-app/core"

// Read-path extraction. Every helper is defensive per field: a missing or
// null property degrades to its zero display value and never drops the
// row, let alone the batch.

// titleText extracts the first text run of a title property
func titleText(p PropertyValue) string {
	if len(p.Title) == 0 {
		return ""
	}
	run := p.Title[0]
	if run.Text != nil && run.Text.Content != "" {
		return run.Text.Content
	}
	return run.PlainText
}

// pageTitle reads a record's title, scanning all properties when the
// expected field yields nothing. The title property is recognizable by
// shape, which keeps names working even when discovery guessed the name
// wrong.
func pageTitle(page Page, titleField string) string {
	if v, ok := page.Properties[titleField]; ok {
		if s := titleText(v); s != "" {
			return s
		}
	}
	for _, v := range page.Properties {
		if v.Title != nil {
			return titleText(v)
		}
	}
	return ""
}

func dateStart(p PropertyValue) string {
	if p.Date == nil {
		return ""
	}
	return p.Date.Start
}

func numberValue(p PropertyValue) float64 {
	if p.Number == nil {
		return 0
	}
	return *p.Number
}

func firstRelationID(p PropertyValue) string {
	if len(p.Relation) == 0 {
		return ""
	}
	return p.Relation[0].ID
}

func statusLabel(p PropertyValue) string {
	if p.Status != nil {
		return p.Status.Name
	}
	if p.Select != nil {
		return p.Select.Name
	}
	return ""
}

// parseTaskRows turns query results into display rows, in response order
func parseTaskRows(pages []Page, schema core.SchemaMap, projects core.Lookup) []core.TaskRow {
	rows := make([]core.TaskRow, 0, len(pages))
	for _, page := range pages {
		props := page.Properties
		label := statusLabel(props[schema[core.RoleStatus]])

		rows = append(rows, core.TaskRow{
			ID:      page.ID,
			Task:    titleText(props[schema[core.RoleTitle]]),
			Date:    dateStart(props[schema[core.RoleDate]]),
			Project: projects.Resolve(firstRelationID(props[schema[core.RoleRelation]]), core.UnknownProject),
			Status:  label,
			State:   core.ParseStatus(label),
		})
	}
	return rows
}

// parseWorkoutRows turns query results into display rows, in response order.
// Measures the collection does not carry read as zero.
func parseWorkoutRows(pages []Page, schema core.SchemaMap, measures map[string]string, exercises core.Lookup) []core.WorkoutRow {
	rows := make([]core.WorkoutRow, 0, len(pages))
	for _, page := range pages {
		props := page.Properties

		rows = append(rows, core.WorkoutRow{
			Exercise: exercises.Resolve(firstRelationID(props[schema[core.RoleRelation]]), core.UnknownExercise),
			Date:     dateStart(props[schema[core.RoleDate]]),
			Weight:   numberValue(props[measures[MeasureWeight]]),
			Reps:     int(numberValue(props[measures[MeasureReps]])),
			Sets:     int(numberValue(props[measures[MeasureSets]])),
		})
	}
	return rows
}

// parseOptions maps reference records to selectable options. Records
// without a usable title show up as untitled instead of being dropped.
func parseOptions(pages []Page, titleField string) []core.Option {
	options := make([]core.Option, 0, len(pages))
	for _, page := range pages {
		name := pageTitle(page, titleField)
		if name == "" {
			name = core.UntitledOption
		}
		options = append(options, core.Option{ID: page.ID, Name: name})
	}
	return options
}
