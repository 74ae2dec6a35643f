// Package config provides centralized configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// DefaultEnvFile is loaded before reading the environment, when present.
const DefaultEnvFile = ".env"

// DefaultModel is the chat-completion model used to summarize descriptions.
const DefaultModel = "gpt-3.5-turbo"

// Config holds all configuration parameters for the application.
type Config struct {
	Jira   JiraConfig
	OpenAI OpenAIConfig
	GitHub GitHubConfig
	Report ReportConfig
}

// JiraConfig holds JIRA specific configuration.
type JiraConfig struct {
	// Domain is the Jira host, e.g. "example.atlassian.net". A value that
	// already carries a scheme is used as the base URL verbatim.
	Domain string
	Email  string
	Token  string
}

// OpenAIConfig holds the completion API configuration. An empty APIKey
// disables summarization.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// GitHubConfig holds GitHub specific configuration, used for gist publishing.
type GitHubConfig struct {
	Token  string
	Domain string
}

// ReportConfig holds report generation settings.
type ReportConfig struct {
	// Delay is the pause after each issue is processed.
	Delay time.Duration
}

// SummarizationEnabled reports whether a completion API key is configured.
func (c *Config) SummarizationEnabled() bool {
	return c.OpenAI.APIKey != ""
}

// LoadConfig loads envFile (if it exists) into the process environment
// without overriding variables that are already set, then reads the
// configuration from environment variables.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := gotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	_ = v.BindEnv("jira.domain", "JIRA_DOMAIN")
	_ = v.BindEnv("jira.email", "JIRA_EMAIL")
	_ = v.BindEnv("jira.token", "JIRA_API_TOKEN")
	_ = v.BindEnv("openai.apikey", "CHAT_GPT_API_KEY")
	_ = v.BindEnv("openai.baseurl", "OPENAI_BASE_URL")
	_ = v.BindEnv("openai.model", "OPENAI_MODEL")
	_ = v.BindEnv("github.token", "GITHUB_TOKEN")
	_ = v.BindEnv("github.domain", "GITHUB_DOMAIN")
	_ = v.BindEnv("report.delay", "REPORT_DELAY")

	v.SetDefault("openai.model", DefaultModel)
	v.SetDefault("github.domain", "github.com")
	v.SetDefault("report.delay", "1s")

	delay, err := time.ParseDuration(v.GetString("report.delay"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_DELAY: %w", err)
	}
	if delay < 0 {
		return nil, fmt.Errorf("invalid REPORT_DELAY: %s is negative", delay)
	}

	config := &Config{
		Jira: JiraConfig{
			Domain: strings.TrimSuffix(v.GetString("jira.domain"), "/"),
			Email:  v.GetString("jira.email"),
			Token:  v.GetString("jira.token"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  v.GetString("openai.apikey"),
			BaseURL: v.GetString("openai.baseurl"),
			Model:   v.GetString("openai.model"),
		},
		GitHub: GitHubConfig{
			Token:  v.GetString("github.token"),
			Domain: v.GetString("github.domain"),
		},
		Report: ReportConfig{
			Delay: delay,
		},
	}

	if config.GitHub.Domain == "" {
		config.GitHub.Domain = "github.com"
	}
	if config.OpenAI.Model == "" {
		config.OpenAI.Model = DefaultModel
	}

	return config, nil
}

// ValidateJiraConfig validates JIRA-specific configuration.
func ValidateJiraConfig(config *Config) error {
	var missingVars []string

	if config.Jira.Domain == "" {
		missingVars = append(missingVars, "JIRA_DOMAIN")
	}
	if config.Jira.Email == "" {
		missingVars = append(missingVars, "JIRA_EMAIL")
	}
	if config.Jira.Token == "" {
		missingVars = append(missingVars, "JIRA_API_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}

// ValidateGitHubConfig validates the configuration needed to publish gists.
func ValidateGitHubConfig(config *Config) error {
	if config.GitHub.Token == "" {
		return fmt.Errorf("missing required environment variables: [GITHUB_TOKEN]")
	}
	return nil
}
