package core

import (
	"os"
	"strconv"
)

// Constants for pagination
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// History listing page sizes
const (
	TaskHistoryPageSize    = 100
	WorkoutHistoryPageSize = 20
)

// SortDirection represents the sort order
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// String returns a string representation of the sort direction
func (sd SortDirection) String() string {
	return string(sd)
}

// IsValid checks if the sort direction is valid
func (sd SortDirection) IsValid() bool {
	return sd == SortAsc || sd == SortDesc
}

// Opposite returns the opposite sort direction
func (sd SortDirection) Opposite() SortDirection {
	if sd == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// ClampPageSize bounds a requested page size to what the hosted API
// accepts. Non-positive values fall back to the configured default.
func ClampPageSize(size int) int {
	if size > MaxPageSize {
		return MaxPageSize
	}
	if size <= 0 {
		return PageSizeFromEnv()
	}
	return size
}

// PageSizeFromEnv gets the default page size from the environment
func PageSizeFromEnv() int {
	if envSize := os.Getenv("TASKAPP_PAGE_SIZE"); envSize != "" {
		if size, err := strconv.Atoi(envSize); err == nil && size > 0 && size <= MaxPageSize {
			return size
		}
	}
	return DefaultPageSize
}
