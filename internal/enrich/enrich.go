// Package enrich turns raw Jira issues into report records, optionally
// summarizing each description, one issue at a time.
package enrich

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/danielolaszy/jirareport/internal/logging"
	"github.com/danielolaszy/jirareport/pkg/models"
)

// DefaultDelay is the pause after each issue.
const DefaultDelay = time.Second

var (
	webAPITag = regexp.MustCompile(`\[WEB-API\]`)
	webTag    = regexp.MustCompile(`\[WEB\]\s*`)
)

// Enricher processes issues sequentially, waiting Delay after every issue
// whether or not the summarizer made a remote call.
type Enricher struct {
	summarizer Summarizer
	delay      time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
}

// New creates an Enricher. A nil summarizer means PassThrough.
func New(summarizer Summarizer, delay time.Duration) *Enricher {
	if summarizer == nil {
		summarizer = PassThrough{}
	}
	return &Enricher{
		summarizer: summarizer,
		delay:      delay,
		sleep:      sleepContext,
	}
}

// Enrich returns one record per issue in input order. The first summarizer
// error aborts the batch and discards the records built so far.
func (e *Enricher) Enrich(ctx context.Context, issues []models.RawIssue) ([]models.Record, error) {
	records := make([]models.Record, 0, len(issues))

	for i, issue := range issues {
		description, err := e.summarizer.Summarize(ctx, issue.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize %s: %w", issue.Key, err)
		}

		records = append(records, models.Record{
			ID:          issue.Key,
			Summary:     CleanSummary(issue.Summary),
			Description: description,
		})

		logging.Debug("processed issue",
			"issue", issue.Key,
			"position", i+1,
			"total", len(issues))

		if err := e.sleep(ctx, e.delay); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// CleanSummary removes every "[WEB-API]" tag and every "[WEB]" tag with the
// whitespace after it, then trims the result.
func CleanSummary(summary string) string {
	summary = webAPITag.ReplaceAllString(summary, "")
	summary = webTag.ReplaceAllString(summary, "")
	return strings.TrimSpace(summary)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
