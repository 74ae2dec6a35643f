// Package github publishes generated reports as GitHub gists.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"

	"github.com/danielolaszy/jirareport/internal/config"
	"github.com/danielolaszy/jirareport/internal/logging"
)

// Client encapsulates the GitHub API client.
type Client struct {
	client *github.Client
}

// NewClient creates a GitHub API client authenticated with GITHUB_TOKEN.
// A domain other than github.com is treated as GitHub Enterprise.
func NewClient(cfg *config.Config) (*Client, error) {
	if err := config.ValidateGitHubConfig(cfg); err != nil {
		return nil, err
	}

	apiURL := APIURL(cfg.GitHub.Domain)

	logging.Debug("github configuration",
		"domain", cfg.GitHub.Domain,
		"api_url", apiURL,
		"token", logging.MaskSensitive(cfg.GitHub.Token))

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.GitHub.Token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(tc)

	if apiURL != "https://api.github.com/" {
		parsedURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}
		client.BaseURL = parsedURL
		client.UploadURL = parsedURL
	}

	return &Client{client: client}, nil
}

// APIURL returns the REST API root for a GitHub domain.
func APIURL(domain string) string {
	domain = strings.TrimSuffix(domain, "/")
	switch {
	case domain == "" || domain == "github.com":
		return "https://api.github.com/"
	case strings.Contains(domain, "://"):
		return domain + "/api/v3/"
	default:
		return fmt.Sprintf("https://%s/api/v3/", domain)
	}
}

// PublishGist uploads content as a secret gist holding a single file and
// returns the gist's web URL.
func (c *Client) PublishGist(ctx context.Context, filename, description, content string) (string, error) {
	gist := &github.Gist{
		Description: github.String(description),
		Public:      github.Bool(false),
		Files: map[github.GistFilename]github.GistFile{
			github.GistFilename(filename): {
				Filename: github.String(filename),
				Content:  github.String(content),
			},
		},
	}

	created, _, err := c.client.Gists.Create(ctx, gist)
	if err != nil {
		return "", fmt.Errorf("failed to create gist: %w", err)
	}

	logging.Debug("gist created", "id", created.GetID())
	return created.GetHTMLURL(), nil
}
