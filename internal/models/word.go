package models

import (
	"github.com/samber/lo"
)

// Word is the wire and display representation of a vocabulary entry.
// ID is nil until the entry has been stored.
type Word struct {
	ID       *int64 `json:"id"`
	Word     string `json:"word"`
	Meaning  string `json:"meaning"`
	Sentence string `json:"sentence"`
}

// WordEntity is the storage representation of a row in the words table
type WordEntity struct {
	ID       int64  `db:"id"`
	Word     string `db:"word"`
	Meaning  string `db:"meaning"`
	Sentence string `db:"sentence"`
}

// SampleWord is the entry shown in an empty add-word form
func SampleWord() Word {
	return Word{
		ID:       lo.ToPtr(int64(1)),
		Word:     "Jubilant",
		Meaning:  "Expressing great happiness",
		Sentence: "The jubilant crowd cheered loudly.",
	}
}

// ToEntity maps a Word onto a storage row. The ID is dropped; the store assigns it.
func ToEntity(w Word) WordEntity {
	return WordEntity{
		Word:     w.Word,
		Meaning:  w.Meaning,
		Sentence: w.Sentence,
	}
}

// FromEntity maps a storage row onto a Word
func FromEntity(e WordEntity) Word {
	return Word{
		ID:       lo.ToPtr(e.ID),
		Word:     e.Word,
		Meaning:  e.Meaning,
		Sentence: e.Sentence,
	}
}

// FromEntities maps storage rows onto Words, preserving order. Never returns nil.
func FromEntities(entities []WordEntity) []Word {
	if len(entities) == 0 {
		return []Word{}
	}
	return lo.Map(entities, func(e WordEntity, _ int) Word {
		return FromEntity(e)
	})
}
