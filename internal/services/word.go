package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/lehmann314159/vocablearn/internal/models"
	"github.com/lehmann314159/vocablearn/internal/repository"
)

const (
	MessageWordAdded = "word added successfully"
)

// ErrUpdateNotSupported is returned by UpdateWord. Editing stored words is not
// offered; an entry is deleted and added again instead.
var ErrUpdateNotSupported = errors.New("updating words is not supported")

// WordService provides business logic for word operations
type WordService struct {
	repo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(repo repository.WordRepository) *WordService {
	return &WordService{
		repo: repo,
	}
}

// CreateWord stores the word under a new ID and returns a confirmation message.
// No field is validated.
func (s *WordService) CreateWord(ctx context.Context, word models.Word) (string, error) {
	if _, err := s.repo.Create(ctx, models.ToEntity(word)); err != nil {
		return "", err
	}
	return MessageWordAdded, nil
}

// ReadWords returns every stored word in ID order
func (s *WordService) ReadWords(ctx context.Context) ([]models.Word, error) {
	entities, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromEntities(entities), nil
}

// UpdateWord always returns ErrUpdateNotSupported
func (s *WordService) UpdateWord(_ context.Context, _ models.Word) (string, error) {
	return "", ErrUpdateNotSupported
}

// DeleteWord removes every word matching the text case-insensitively.
// It reports true even when nothing matched; only storage faults are errors.
func (s *WordService) DeleteWord(ctx context.Context, word string) (bool, error) {
	if _, err := s.repo.DeleteByWord(ctx, word); err != nil {
		return false, err
	}
	return true, nil
}

// ExportCSV exports all words to CSV format
func (s *WordService) ExportCSV(ctx context.Context, w io.Writer) error {
	words, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch words: %w", err)
	}

	writer := csv.NewWriter(w)

	header := []string{"word", "meaning", "sentence"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, word := range words {
		if err := writer.Write([]string{word.Word, word.Meaning, word.Sentence}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
