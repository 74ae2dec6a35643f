package jira

import (
	"fmt"
	"strings"

	"github.com/danielolaszy/jirareport/internal/period"
)

// targetStatuses are the statuses a transition must reach to count as work
// done in the period, in query order.
var targetStatuses = []string{"Closed", "DONE", "Code Review"}

// excludedStatus is appended to the last clause only.
const excludedStatus = "Pending"

// StatusChangeQuery builds the JQL selecting issues the current user moved
// to one of the target statuses during r.
//
// The exclusion is appended without parentheses, so JQL precedence (AND
// before OR) applies it to the final clause only. Existing reports depend on
// this grouping; keep it.
func StatusChangeQuery(r period.Range) string {
	start, end := r.StartDate(), r.EndDate()

	clauses := make([]string, 0, len(targetStatuses))
	for _, status := range targetStatuses {
		clauses = append(clauses, fmt.Sprintf(`status CHANGED TO "%s" BY currentUser() DURING ("%s", "%s")`,
			status, start, end))
	}

	return strings.Join(clauses, " OR ") + fmt.Sprintf(` AND status NOT IN ("%s")`, excludedStatus)
}
