package enrich

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/danielolaszy/jirareport/internal/config"
	"github.com/danielolaszy/jirareport/internal/logging"
)

// ErrEmptyCompletion is returned when the completion API answers without choices.
var ErrEmptyCompletion = errors.New("empty completion response")

// Summarizer turns an issue description into the text shown in the report.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// NewSummarizer picks the summarizer once at startup: OpenAI when an API key
// is configured, PassThrough otherwise.
func NewSummarizer(cfg *config.Config) Summarizer {
	if !cfg.SummarizationEnabled() {
		logging.Info("summarization disabled, descriptions are passed through")
		return PassThrough{}
	}

	logging.Info("summarization enabled",
		"model", cfg.OpenAI.Model,
		"api_key", logging.MaskSensitive(cfg.OpenAI.APIKey))
	return NewOpenAI(cfg.OpenAI)
}

// PassThrough returns descriptions unchanged and never calls out.
type PassThrough struct{}

// Summarize returns text as is.
func (PassThrough) Summarize(_ context.Context, text string) (string, error) {
	return text, nil
}

// OpenAI summarizes descriptions with a chat-completion request.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI summarizer. An empty BaseURL keeps the
// library's default endpoint.
func NewOpenAI(cfg config.OpenAIConfig) *OpenAI {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = config.DefaultModel
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Summarize sends text as the single user message and returns the first
// choice's content.
func (o *OpenAI) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
