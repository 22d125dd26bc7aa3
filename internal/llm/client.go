// Package llm wraps the hosted language-model provider. The live client
// talks to OpenRouter's OpenAI-compatible chat completions endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"travel-planner-backend/internal/store"
)

// ErrProvider marks a failed model call. The turn fails and the error is
// reported to the caller; there are no retries.
var ErrProvider = errors.New("model provider failure")

// Client produces one assistant reply for a full conversation history.
type Client interface {
	Complete(ctx context.Context, messages []store.Message) (string, error)
}

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Referer     string
	Title       string
	Temperature float32
	MaxTokens   int
}

// OpenRouterClient implements Client via go-openai pointed at OpenRouter.
type OpenRouterClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewOpenRouterClient(cfg Config) *OpenRouterClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	title := cfg.Title
	if title == "" {
		title = "AI Travel Planner"
	}
	oc.HTTPClient = &http.Client{
		Timeout: 60 * time.Second,
		Transport: &attributionTransport{
			referer: cfg.Referer,
			title:   title,
			base:    http.DefaultTransport,
		},
	}
	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = 0.3
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	return &OpenRouterClient{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (c *OpenRouterClient) Complete(ctx context.Context, messages []store.Message) (string, error) {
	converted := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role == "" {
			role = openai.ChatMessageRoleUser
		}
		converted = append(converted, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    converted,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrProvider)
	}
	return resp.Choices[0].Message.Content, nil
}

// attributionTransport adds the OpenRouter app-attribution headers to every
// request.
type attributionTransport struct {
	referer string
	title   string
	base    http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	req = req.Clone(req.Context())
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	req.Header.Set("X-Title", t.title)
	return t.base.RoundTrip(req)
}
