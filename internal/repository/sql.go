package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/lehmann314159/vocablearn/internal/models"
)

// SQLRepository implements WordRepository on a sqlite3 or mysql database
type SQLRepository struct {
	db *sqlx.DB
}

// NewSQLRepository creates a new SQL repository
func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// Create inserts a new word and returns the created word with ID
func (r *SQLRepository) Create(ctx context.Context, word models.WordEntity) (models.WordEntity, error) {
	result, err := r.db.ExecContext(ctx,
		r.db.Rebind(`INSERT INTO words (word, meaning, sentence) VALUES (?, ?, ?)`),
		word.Word, word.Meaning, word.Sentence,
	)
	if err != nil {
		return models.WordEntity{}, fmt.Errorf("failed to insert word: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.WordEntity{}, fmt.Errorf("failed to get last insert id: %w", err)
	}

	word.ID = id
	return word, nil
}

// List retrieves all words ordered by ID
func (r *SQLRepository) List(ctx context.Context) ([]models.WordEntity, error) {
	words := []models.WordEntity{}
	if err := r.db.SelectContext(ctx, &words,
		`SELECT id, word, meaning, sentence FROM words ORDER BY id ASC`,
	); err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	return words, nil
}

// DeleteByWord removes all words matching the text case-insensitively.
// Matching uses Unicode case folding in Go; SQLite's LOWER only folds ASCII.
func (r *SQLRepository) DeleteByWord(ctx context.Context, word string) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var candidates []models.WordEntity
	if err := tx.SelectContext(ctx, &candidates, `SELECT id, word FROM words`); err != nil {
		return 0, fmt.Errorf("failed to query words: %w", err)
	}

	ids := lo.FilterMap(candidates, func(w models.WordEntity, _ int) (int64, bool) {
		return w.ID, strings.EqualFold(w.Word, word)
	})
	if len(ids) == 0 {
		return 0, tx.Commit()
	}

	query, args, err := sqlx.In(`DELETE FROM words WHERE id IN (?)`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete word: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit delete: %w", err)
	}

	return rowsAffected, nil
}
