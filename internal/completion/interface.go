package completion

import (
	"context"
	"errors"
)

//go:generate mockgen -source=interface.go -destination=../mocks/completion/mock_completer.go -package=mock_completion

// Completer sends a free-text prompt to a language model and returns its reply
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyCompletion is returned when the provider answers without any choice to read
var ErrEmptyCompletion = errors.New("completion returned no choices")

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)
