package agent

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/katalvlaran/lvlplan/model"
	"github.com/katalvlaran/lvlplan/rules"
)

// Client produces corrections for a snapshot and its findings.
// Implementations wrap a language model; tests substitute their own.
type Client interface {
	Suggest(ctx context.Context, b *model.Building, rep *rules.Report) ([]Correction, error)
}

// DefaultModel is the chat model used when WithModel is not given.
const DefaultModel = openai.GPT4oMini

// systemPrompt pins the reviewer persona for every request.
const systemPrompt = "You are a building design reviewer. You receive an element " +
	"inventory with validation findings and respond with corrections as strict JSON."

// ClientOption configures NewOpenAIClient.
type ClientOption func(*clientConfig)

type clientConfig struct {
	model   string
	baseURL string
}

// WithModel selects the chat model.
func WithModel(m string) ClientOption {
	return func(c *clientConfig) { c.model = m }
}

// WithBaseURL points the client at any OpenAI-compatible endpoint,
// which is how local inference servers get wired in.
func WithBaseURL(u string) ClientOption {
	return func(c *clientConfig) { c.baseURL = u }
}

// OpenAIClient asks an OpenAI-compatible chat endpoint for corrections.
type OpenAIClient struct {
	api   *openai.Client
	model string
}

// NewOpenAIClient builds a Client over the OpenAI chat API.
func NewOpenAIClient(apiKey string, opts ...ClientOption) *OpenAIClient {
	cfg := clientConfig{model: DefaultModel}
	for _, fn := range opts {
		fn(&cfg)
	}
	apiCfg := openai.DefaultConfig(apiKey)
	if cfg.baseURL != "" {
		apiCfg.BaseURL = cfg.baseURL
	}
	return &OpenAIClient{api: openai.NewClientWithConfig(apiCfg), model: cfg.model}
}

// Suggest renders the review prompt, requests a JSON-mode completion
// and decodes the corrections out of the first choice.
func (c *OpenAIClient) Suggest(ctx context.Context, b *model.Building, rep *rules.Report) ([]Correction, error) {
	if b == nil {
		return nil, ErrNilBuilding
	}
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: Prompt(b, rep)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("agent: completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("agent: completion returned no choices")
	}
	return ParseCorrections([]byte(resp.Choices[0].Message.Content))
}
