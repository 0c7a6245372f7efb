package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/lehmann314159/vocablearn/internal/models"
)

// MemoryRepository implements WordRepository in process memory.
// Contents are lost when the process exits.
type MemoryRepository struct {
	mu     sync.RWMutex
	words  []models.WordEntity
	nextID int64
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Create appends the word with the next ID
func (r *MemoryRepository) Create(_ context.Context, word models.WordEntity) (models.WordEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	word.ID = r.nextID
	r.nextID++
	r.words = append(r.words, word)
	return word, nil
}

// List returns a copy of all words in insertion order
func (r *MemoryRepository) List(_ context.Context) ([]models.WordEntity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	words := make([]models.WordEntity, len(r.words))
	copy(words, r.words)
	return words, nil
}

// DeleteByWord removes all words matching the text case-insensitively
func (r *MemoryRepository) DeleteByWord(_ context.Context, word string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.words[:0]
	var removed int64
	for _, w := range r.words {
		if strings.EqualFold(w.Word, word) {
			removed++
			continue
		}
		kept = append(kept, w)
	}
	r.words = kept
	return removed, nil
}
