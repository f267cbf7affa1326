package core

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		label string
		want  Status
	}{
		{"Not started", StatusNotStarted},
		{"Not Started", StatusNotStarted},
		{"未着手", StatusNotStarted},
		{"To Do", StatusNotStarted},
		{"To-do", StatusNotStarted},
		{"In progress", StatusInProgress},
		{"In Progress", StatusInProgress},
		{"進行中", StatusInProgress},
		{"Doing", StatusInProgress},
		{"Done", StatusDone},
		{"Completed", StatusDone},
		{"完了", StatusDone},
		{"Archived", StatusDone},

		// Casing and spacing variants resolve through the snake-cased table
		{"IN PROGRESS", StatusInProgress},
		{"not_started", StatusNotStarted},
		{"completed", StatusDone},

		{"Blocked", StatusUnknown},
		{"", StatusUnknown},
	}

	for _, tt := range tests {
		if got := ParseStatus(tt.label); got != tt.want {
			t.Errorf("ParseStatus(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusNotStarted.String() != "Not started" {
		t.Errorf("Expected 'Not started', got %q", StatusNotStarted.String())
	}
	if StatusInProgress.String() != "In progress" {
		t.Errorf("Expected 'In progress', got %q", StatusInProgress.String())
	}
	if StatusDone.String() != "Done" {
		t.Errorf("Expected 'Done', got %q", StatusDone.String())
	}
	if StatusUnknown.String() != "Unknown" {
		t.Errorf("Expected 'Unknown', got %q", StatusUnknown.String())
	}
}

func TestStatusWriteLabel(t *testing.T) {
	if StatusDone.WriteLabel() != "完了" {
		t.Errorf("Expected write label '完了', got %q", StatusDone.WriteLabel())
	}
	if StatusUnknown.WriteLabel() != "" {
		t.Errorf("StatusUnknown should have no write label, got %q", StatusUnknown.WriteLabel())
	}
}

func TestStatusWriteLabelRoundTrip(t *testing.T) {
	// Every writable label must parse back to the state it was written for
	for _, s := range StatusChoices() {
		if got := ParseStatus(s.WriteLabel()); got != s {
			t.Errorf("ParseStatus(%q) = %v, want %v", s.WriteLabel(), got, s)
		}
	}
}

func TestStatusChoices(t *testing.T) {
	choices := StatusChoices()

	if len(choices) != 3 {
		t.Fatalf("Expected 3 status choices, got %d", len(choices))
	}
	if choices[0] != StatusNotStarted || choices[2] != StatusDone {
		t.Error("Status choices out of display order")
	}
	for _, s := range choices {
		if s == StatusUnknown {
			t.Error("StatusUnknown must not be offered as a choice")
		}
	}
}
