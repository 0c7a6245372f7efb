package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lehmann314159/vocablearn/internal/completion"
	"github.com/lehmann314159/vocablearn/internal/models"
)

// DefinitionService generates a meaning and an example sentence for a word
type DefinitionService struct {
	completer completion.Completer
	logger    *slog.Logger
}

// NewDefinitionService creates a new definition service
func NewDefinitionService(completer completion.Completer, logger *slog.Logger) *DefinitionService {
	return &DefinitionService{
		completer: completer,
		logger:    logger,
	}
}

// FallbackMeaning is the meaning used when generation fails
func FallbackMeaning(word string) string {
	return "Definition for: " + word
}

// FallbackSentence is the example sentence used when generation fails
func FallbackSentence(word string) string {
	return "Example sentence with " + word + "."
}

func meaningPrompt(word string) string {
	return fmt.Sprintf("Define the word '%s' in simple, clear terms. "+
		"Provide only the definition without any extra text.", word)
}

func sentencePrompt(word, meaning string) string {
	return fmt.Sprintf("Create a simple, clear example sentence using the word '%s' "+
		"which means '%s'. "+
		"Return only the sentence without quotes or extra text. "+
		"Make it natural and easy to understand.", word, meaning)
}

// Generate returns the word with a generated meaning and sentence. The
// sentence prompt includes the generated meaning, so the calls run in order.
// If either call fails both fields fall back to placeholder text; Generate
// never fails and never stores anything.
func (s *DefinitionService) Generate(ctx context.Context, word string) models.Word {
	generated := models.Word{Word: word}

	meaning, sentence, err := s.generate(ctx, word)
	if err != nil {
		s.logger.Warn("word generation failed, using fallback",
			slog.String("word", word),
			slog.Any("error", err),
		)
		generated.Meaning = FallbackMeaning(word)
		generated.Sentence = FallbackSentence(word)
		return generated
	}

	generated.Meaning = meaning
	generated.Sentence = sentence
	return generated
}

func (s *DefinitionService) generate(ctx context.Context, word string) (string, string, error) {
	meaning, err := s.completer.Complete(ctx, meaningPrompt(word))
	if err != nil {
		return "", "", fmt.Errorf("failed to generate meaning: %w", err)
	}
	meaning = strings.TrimSpace(meaning)

	sentence, err := s.completer.Complete(ctx, sentencePrompt(word, meaning))
	if err != nil {
		return "", "", fmt.Errorf("failed to generate sentence: %w", err)
	}

	return meaning, strings.TrimSpace(sentence), nil
}
