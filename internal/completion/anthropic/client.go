package anthropic

import (
	"context"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/lehmann314159/vocablearn/internal/completion"
)

// Client sends prompts to the Anthropic Messages API
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewClient creates a client. An empty baseURL selects the public API.
// The SDK's own retries are disabled; failures surface on the first attempt.
func NewClient(apiKey, model, baseURL string, timeout time.Duration, maxTokens int64) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}

	return &Client{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Complete implements completion.Completer; text blocks of the reply are concatenated
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", completion.ErrEmptyCompletion
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}
