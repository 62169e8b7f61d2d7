package repository

import (
	"time"
)

// parseTimestamp parses an RFC3339 column, returning the zero time for
// malformed values.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatTimestamp renders t for storage in UTC.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
