package openai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resty.dev/v3"

	"github.com/lehmann314159/vocablearn/internal/completion"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// Client talks to an OpenAI-compatible /chat/completions endpoint
type Client struct {
	httpClient *resty.Client
	model      string
	maxTokens  int64
}

// NewClient creates a client. An empty baseURL selects the public OpenAI API;
// a zero timeout leaves requests bounded only by their context.
func NewClient(apiKey, model, baseURL string, timeout time.Duration, maxTokens int64) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		httpClient: client,
		model:      model,
		maxTokens:  maxTokens,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type ChatCompletionRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int64     `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const RoleUser Role = "user"

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role    `json:"role"`
	Content *string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Complete implements completion.Completer with a single user message.
// The reply is returned untrimmed.
func (client *Client) Complete(ctx context.Context, prompt string) (string, error) {
	requestBody := ChatCompletionRequest{
		Model: client.model,
		Messages: []Message{
			{Role: RoleUser, Content: prompt},
		},
		MaxTokens: client.maxTokens,
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody, ok := response.Result().(*ChatCompletionResponse)
	if !ok || responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in %s", completion.ErrEmptyCompletion, response.String())
	}

	slog.Default().Debug("openai response content",
		"model", responseBody.Model,
		"totalTokens", responseBody.Usage.TotalTokens,
	)

	// A null content is an empty reply, not a failure.
	content := responseBody.Choices[0].Message.Content
	if content == nil {
		return "", nil
	}
	return *content, nil
}
