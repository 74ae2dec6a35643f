// Package models defines data structures shared across the application.
package models

// RawIssue is a Jira issue as returned by the search endpoint, reduced to
// the fields the report needs.
type RawIssue struct {
	// Key is the full Jira issue identifier (e.g., "ABC-123")
	Key string

	// Summary is the issue's summary field, tags included
	Summary string

	// Description is the issue body; empty when Jira returns none
	Description string
}

// Record is one normalized report line built from a RawIssue.
type Record struct {
	// ID is the Jira issue key
	ID string

	// Summary is the issue summary with known bracketed tags removed
	Summary string

	// Description is either the raw description or a generated summary of it
	Description string
}
