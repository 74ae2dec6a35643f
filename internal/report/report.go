// Package report renders records into the plain-text monthly report.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/danielolaszy/jirareport/internal/logging"
	"github.com/danielolaszy/jirareport/pkg/models"
)

// DefaultPath is where the report is written, relative to the working directory.
const DefaultPath = "jira_results.txt"

// Options controls optional report content.
type Options struct {
	// Descriptions adds a "Description:" line under each entry of the
	// Details section. Off by default so the output keeps its historical
	// format, where both sections list the same lines.
	Descriptions bool
}

// Render builds the report text:
//
//	Macro Tasks
//
//	{ID} - {Summary}
//
//	Details
//
//	{ID} - {Summary}
func Render(records []models.Record, opts Options) string {
	var sb strings.Builder

	sb.WriteString("Macro Tasks\n\n")
	for _, r := range records {
		fmt.Fprintf(&sb, "%s - %s\n", r.ID, r.Summary)
	}

	sb.WriteString("\nDetails\n\n")
	for _, r := range records {
		fmt.Fprintf(&sb, "%s - %s\n", r.ID, r.Summary)
		if opts.Descriptions {
			fmt.Fprintf(&sb, "Description: %s\n", r.Description)
		}
	}

	return sb.String()
}

// WriteFile renders records and overwrites path with the result.
func WriteFile(path string, records []models.Record, opts Options) error {
	text := Render(records, opts)

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("error writing file %s: %w", path, err)
	}

	logging.Debug("report written", "path", path, "bytes", len(text))
	return nil
}
