// Package cmd provides the command-line interface for jirareport.
package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/jirareport/internal/config"
	"github.com/danielolaszy/jirareport/internal/period"
	"github.com/danielolaszy/jirareport/internal/report"
)

// options holds the flag values of one invocation.
type options struct {
	output       string
	envFile      string
	descriptions bool
	gist         bool
}

// NewRootCmd builds the jirareport command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "jirareport <month> <year>",
		Short: "Write a monthly report of the Jira issues you moved forward",
		Long: `jirareport lists the Jira issues whose status you changed to Closed, DONE
or Code Review during a calendar month, and writes them to a text report.

When CHAT_GPT_API_KEY is set, each issue description is summarized through
the OpenAI chat completion API. Issues are processed one at a time with a
pause after each one (REPORT_DELAY, default 1s).

Required environment (a .env file in the working directory is read too):
  JIRA_DOMAIN      Jira host, e.g. example.atlassian.net
  JIRA_EMAIL       account email used for basic auth
  JIRA_API_TOKEN   API token used for basic auth

Example:
  jirareport 8 2024`,
		Args:          monthYearArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			month, year, err := parseMonthYear(args)
			if err != nil {
				return err
			}

			// Argument errors print usage; failures past this point do not.
			cmd.SilenceUsage = true

			return runReport(cmd.Context(), cmd.OutOrStdout(), opts, month, year)
		},
	}

	rootCmd.Flags().StringVarP(&opts.output, "output", "o", report.DefaultPath, "path of the text report")
	rootCmd.Flags().StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "dotenv file loaded before reading the environment (empty to skip)")
	rootCmd.Flags().BoolVar(&opts.descriptions, "descriptions", false, "include issue descriptions in the Details section")
	rootCmd.Flags().BoolVar(&opts.gist, "gist", false, "also publish the report as a secret GitHub gist (needs GITHUB_TOKEN)")

	return rootCmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// monthYearArgs rejects anything but a valid month and year before any
// network activity happens.
func monthYearArgs(cmd *cobra.Command, args []string) error {
	_, _, err := parseMonthYear(args)
	return err
}

func parseMonthYear(args []string) (int, int, error) {
	const usage = "please provide a valid month and year as arguments (e.g., jirareport 8 2024)"

	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%s: expected 2 arguments, got %d", usage, len(args))
	}

	month, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%s: invalid month %q", usage, args[0])
	}

	year, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%s: invalid year %q", usage, args[1])
	}

	if _, err := period.Month(month, year); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", usage, err)
	}

	return month, year, nil
}
