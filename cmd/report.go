package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/danielolaszy/jirareport/internal/config"
	"github.com/danielolaszy/jirareport/internal/enrich"
	"github.com/danielolaszy/jirareport/internal/github"
	"github.com/danielolaszy/jirareport/internal/jira"
	"github.com/danielolaszy/jirareport/internal/logging"
	"github.com/danielolaszy/jirareport/internal/period"
	"github.com/danielolaszy/jirareport/internal/report"
)

// runReport computes the month range, searches Jira, enriches the issues and
// writes the report. Search and enrichment errors abort the run before
// anything is written; a write failure is only logged.
func runReport(ctx context.Context, out io.Writer, opts *options, month, year int) error {
	cfg, err := config.LoadConfig(opts.envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	jiraClient, err := jira.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize jira client: %w", err)
	}

	var gistClient *github.Client
	if opts.gist {
		gistClient, err = github.NewClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize github client: %w", err)
		}
	}

	r, err := period.Month(month, year)
	if err != nil {
		return err
	}

	logging.Info("starting report",
		"range", r.String(),
		"summarization", cfg.SummarizationEnabled(),
		"output", opts.output)

	issues, err := jiraClient.SearchIssues(ctx, jira.StatusChangeQuery(r))
	if err != nil {
		return err
	}

	enricher := enrich.New(enrich.NewSummarizer(cfg), cfg.Report.Delay)
	records, err := enricher.Enrich(ctx, issues)
	if err != nil {
		return err
	}

	reportOpts := report.Options{Descriptions: opts.descriptions}

	writeErr := report.WriteFile(opts.output, records, reportOpts)
	if writeErr != nil {
		logging.Error("error writing file", "path", opts.output, "error", writeErr)
	} else {
		fmt.Fprintf(out, "Text file generated successfully: %s\n", opts.output)
	}

	logging.Info("report finished",
		"path", opts.output,
		"records", len(records),
		"written", writeErr == nil)

	if gistClient != nil && writeErr == nil {
		description := fmt.Sprintf("Jira report %s", r.Start.Format("2006-01"))
		gistURL, err := gistClient.PublishGist(ctx, filepath.Base(opts.output), description, report.Render(records, reportOpts))
		if err != nil {
			logging.Error("failed to publish gist", "error", err)
		} else {
			fmt.Fprintf(out, "Gist published: %s\n", gistURL)
		}
	}

	return nil
}
