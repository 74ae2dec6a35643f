// Package jira runs status-change searches against the Jira REST API.
package jira

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	jira "github.com/andygrunwald/go-jira"
	pkgerrors "github.com/pkg/errors"

	"github.com/danielolaszy/jirareport/internal/config"
	"github.com/danielolaszy/jirareport/internal/logging"
	"github.com/danielolaszy/jirareport/pkg/models"
)

// ErrQueryExecution is returned when the search endpoint answers with
// anything other than 200 OK.
var ErrQueryExecution = errors.New("error executing JQL query")

// Client handles interactions with the JIRA API
type Client struct {
	client *jira.Client
}

// NewClient creates a JIRA client authenticated with HTTP Basic auth, using
// the account email as username and the API token as password.
func NewClient(cfg *config.Config) (*Client, error) {
	if err := config.ValidateJiraConfig(cfg); err != nil {
		return nil, err
	}

	baseURL := BaseURL(cfg.Jira.Domain)

	logging.Debug("jira configuration",
		"base_url", baseURL,
		"email", cfg.Jira.Email,
		"token", logging.MaskSensitive(cfg.Jira.Token))

	tp := jira.BasicAuthTransport{
		Username: cfg.Jira.Email,
		Password: cfg.Jira.Token,
	}

	client, err := jira.NewClient(tp.Client(), baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %w", err)
	}

	return &Client{client: client}, nil
}

// BaseURL turns a configured domain into the API base URL. Domains without
// a scheme are served over HTTPS.
func BaseURL(domain string) string {
	if strings.Contains(domain, "://") {
		return domain
	}
	return "https://" + domain
}

// SearchIssues runs jql once against /rest/api/2/search. Only the first page
// of results is read; the server's default page size caps the result.
func (c *Client) SearchIssues(ctx context.Context, jql string) ([]models.RawIssue, error) {
	if c.client == nil {
		return nil, fmt.Errorf("JIRA client not initialized")
	}

	logging.Debug("executing jql query", "jql", jql)

	issues, resp, err := c.client.Issue.SearchWithContext(ctx, jql, nil)
	if resp != nil && resp.Response != nil && resp.StatusCode != http.StatusOK {
		logging.Debug("jql query rejected", "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("%w (status: %d)", ErrQueryExecution, resp.StatusCode)
	}
	if err != nil {
		// go-jira wraps transport failures; hand back the original error.
		return nil, pkgerrors.Cause(err)
	}

	result := make([]models.RawIssue, 0, len(issues))
	for _, issue := range issues {
		raw := models.RawIssue{Key: issue.Key}
		if issue.Fields != nil {
			raw.Summary = issue.Fields.Summary
			raw.Description = issue.Fields.Description
		}
		result = append(result, raw)
	}

	logging.Info("found jira issues", "count", len(result))

	return result, nil
}
