package core

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	hexIDPattern = regexp.MustCompile(`[0-9a-f]{32}`)
	uuidPattern  = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
)

// NormalizeID extracts a collection or record identifier from user-supplied
// input. Share URLs (with or without query parameters), bare 32-character
// hex identifiers and hyphenated UUIDs are all accepted; anything else is
// returned unchanged on the assumption that it already is an identifier.
// The function is pure and idempotent.
func NormalizeID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" {
		return ""
	}

	// Drop the query string, then keep only the last path segment
	if i := strings.IndexByte(id, '?'); i >= 0 {
		id = id[:i]
	}
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		id = id[i+1:]
	}

	if m := hexIDPattern.FindString(id); m != "" {
		return m
	}
	if m := uuidPattern.FindString(id); m != "" {
		if parsed, err := uuid.Parse(m); err == nil {
			return parsed.String()
		}
	}
	return id
}
