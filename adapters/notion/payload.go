package notion

import (
	"time"

	"github.com/kokumai1113/task-app/core"
)

// buildProperties assembles the property payload for a new record. Only
// roles the schema names and inputs that are actually present make it into
// the payload; optional inputs are omitted entirely rather than written as
// nulls.
func buildProperties(schema core.SchemaMap, title string, day time.Time, relationID string, numbers map[string]float64) PropertyMap {
	props := PropertyMap{}

	if field := schema[core.RoleTitle]; field != "" {
		props[field] = PropertyValue{
			Title: []RichText{{Text: &TextContent{Content: title}}},
		}
	}

	if field := schema[core.RoleDate]; field != "" && !day.IsZero() {
		props[field] = PropertyValue{
			Date: &DateValue{Start: day.Format(time.DateOnly)},
		}
	}

	if field := schema[core.RoleRelation]; field != "" && relationID != "" {
		props[field] = PropertyValue{
			Relation: []RelationRef{{ID: relationID}},
		}
	}

	for field, value := range numbers {
		v := value
		props[field] = PropertyValue{Number: &v}
	}

	return props
}
