// Package search implements the case-insensitive substring matching the
// entity stores expose through their Search operation.
package search

import (
	"strings"
)

// Match describes one field that contained the query.
type Match struct {
	// Field is the position of the matched field in the entity's
	// search-text set.
	Field int

	// Text is the original field value.
	Text string

	// Start is the byte offset of the first occurrence in the lowered text.
	Start int
}

// Matches reports whether any of the fields contains query, ignoring case.
// An empty query never matches; callers that want "empty query returns
// everything" semantics handle that before consulting the engine.
func Matches(query string, fields []string) bool {
	if query == "" {
		return false
	}
	lowered := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowered) {
			return true
		}
	}
	return false
}

// FindMatches returns every field that contains query, with the offset of
// the first occurrence. Used by the CLI to report where a hit landed.
func FindMatches(query string, fields []string) []Match {
	if query == "" {
		return nil
	}
	lowered := strings.ToLower(query)
	var matches []Match
	for i, f := range fields {
		idx := strings.Index(strings.ToLower(f), lowered)
		if idx < 0 {
			continue
		}
		matches = append(matches, Match{Field: i, Text: f, Start: idx})
	}
	return matches
}

// Highlight wraps every occurrence of query in text with the given markers,
// matching case-insensitively but preserving the original casing.
func Highlight(text, query, startMarker, endMarker string) string {
	if query == "" {
		return text
	}
	loweredText := strings.ToLower(text)
	loweredQuery := strings.ToLower(query)
	queryLen := len(loweredQuery)

	var positions []int
	for i := 0; i <= len(loweredText)-queryLen; i++ {
		if loweredText[i:i+queryLen] == loweredQuery {
			positions = append(positions, i)
			i += queryLen - 1
		}
	}
	if len(positions) == 0 {
		return text
	}

	var builder strings.Builder
	lastEnd := 0
	for _, start := range positions {
		end := start + queryLen
		builder.WriteString(text[lastEnd:start])
		builder.WriteString(startMarker)
		builder.WriteString(text[start:end])
		builder.WriteString(endMarker)
		lastEnd = end
	}
	builder.WriteString(text[lastEnd:])
	return builder.String()
}
