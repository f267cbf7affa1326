package core

import "testing"

func TestLookupResolve(t *testing.T) {
	lookup := Lookup{"p1": "Home Renovation"}

	if got := lookup.Resolve("", UnknownProject); got != NoRelation {
		t.Errorf("Expected %q for an empty reference, got %q", NoRelation, got)
	}
	if got := lookup.Resolve("p1", UnknownProject); got != "Home Renovation" {
		t.Errorf("Expected resolved name, got %q", got)
	}
	if got := lookup.Resolve("p2", UnknownProject); got != UnknownProject {
		t.Errorf("Expected %q for an unresolvable reference, got %q", UnknownProject, got)
	}
}

func TestLookupResolveNilLookup(t *testing.T) {
	var lookup Lookup

	if got := lookup.Resolve("e1", UnknownExercise); got != UnknownExercise {
		t.Errorf("Expected %q with no lookup available, got %q", UnknownExercise, got)
	}
	if got := lookup.Resolve("", UnknownExercise); got != NoRelation {
		t.Errorf("Expected %q for an empty reference, got %q", NoRelation, got)
	}
}

func TestOptionsToLookup(t *testing.T) {
	options := []Option{
		{ID: "a", Name: "Bench Press"},
		{ID: "b", Name: "Squat"},
	}

	lookup := OptionsToLookup(options)

	if len(lookup) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(lookup))
	}
	if lookup["a"] != "Bench Press" || lookup["b"] != "Squat" {
		t.Errorf("Lookup not built correctly: %v", lookup)
	}
}
