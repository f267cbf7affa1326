package core

import (
	"sort"
	"strings"
)

// FieldRole identifies the purpose a collection property plays in a record
type FieldRole string

const (
	RoleTitle    FieldRole = "title"
	RoleDate     FieldRole = "date"
	RoleRelation FieldRole = "relation"
	RoleStatus   FieldRole = "status"
)

// SchemaMap maps field roles to the property names a collection actually uses
type SchemaMap map[FieldRole]string

// Has reports whether the schema carries a property for the given role
func (s SchemaMap) Has(role FieldRole) bool {
	return s[role] != ""
}

// FieldMeta describes a single property from collection metadata
type FieldMeta struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// RolePolicy controls how collection properties are elected into roles
type RolePolicy struct {
	// RelationHints are matched case-insensitively as substrings against
	// relation property names; the first hint with a hit wins the role.
	RelationHints []string

	// Fallback supplies property names for roles without a candidate, and
	// doubles as the full schema when metadata cannot be fetched at all.
	Fallback SchemaMap
}

// Default schemas of the two record families. Collections that rename
// their properties are picked up by discovery; these names apply when
// discovery fails or a role has no candidate.
var (
	DefaultTaskSchema = SchemaMap{
		RoleTitle:    "Task Name",
		RoleDate:     "Date",
		RoleRelation: "Project",
		RoleStatus:   "Status",
	}

	DefaultWorkoutSchema = SchemaMap{
		RoleTitle:    "名前",
		RoleDate:     "日付",
		RoleRelation: "workout list",
	}
)

// DefaultTaskPolicy returns the resolution policy for task collections
func DefaultTaskPolicy() RolePolicy {
	return RolePolicy{
		RelationHints: []string{"project"},
		Fallback:      DefaultTaskSchema,
	}
}

// DefaultWorkoutPolicy returns the resolution policy for workout collections
func DefaultWorkoutPolicy() RolePolicy {
	return RolePolicy{
		RelationHints: []string{"workout", "exercise"},
		Fallback:      DefaultWorkoutSchema,
	}
}

// ResolveRoles partitions collection properties by type and elects one
// property per role. Candidates are considered in lexical order so the
// outcome is stable across calls. Roles with neither a candidate nor a
// fallback name are left out of the result.
func ResolveRoles(fields []FieldMeta, policy RolePolicy) SchemaMap {
	byType := make(map[string][]string)
	for _, f := range fields {
		byType[f.Type] = append(byType[f.Type], f.Name)
	}
	for _, names := range byType {
		sort.Strings(names)
	}

	schema := SchemaMap{}
	assign(schema, RoleTitle, firstOr(byType["title"], policy.Fallback[RoleTitle]))
	assign(schema, RoleDate, firstOr(byType["date"], policy.Fallback[RoleDate]))
	assign(schema, RoleRelation, pickRelation(byType["relation"], policy))

	// Older collections model status as a select property. No fallback
	// here: metadata in hand proves whether a status field exists, and
	// guessing one would turn its absence into write failures.
	assign(schema, RoleStatus, firstOr(byType["status"], firstOr(byType["select"], "")))

	return schema
}

func assign(schema SchemaMap, role FieldRole, name string) {
	if name != "" {
		schema[role] = name
	}
}

func firstOr(candidates []string, fallback string) string {
	if len(candidates) > 0 {
		return candidates[0]
	}
	return fallback
}

func pickRelation(candidates []string, policy RolePolicy) string {
	for _, hint := range policy.RelationHints {
		for _, name := range candidates {
			if strings.Contains(strings.ToLower(name), strings.ToLower(hint)) {
				return name
			}
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return policy.Fallback[RoleRelation]
}
