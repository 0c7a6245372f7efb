package repository

import (
	"context"

	"github.com/lehmann314159/vocablearn/internal/models"
)

// WordRepository defines the interface for word persistence operations
type WordRepository interface {
	// Create inserts a new word and returns it with its assigned ID.
	// Any ID already set on the entity is ignored.
	Create(ctx context.Context, word models.WordEntity) (models.WordEntity, error)

	// List retrieves every stored word in ascending ID order
	List(ctx context.Context) ([]models.WordEntity, error)

	// DeleteByWord removes every word whose text matches case-insensitively
	// and returns the number of rows removed
	DeleteByWord(ctx context.Context, word string) (int64, error)
}
