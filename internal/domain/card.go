package domain

import (
	"errors"
	"strings"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is zero.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardWordEmpty is returned when a card has no word to study.
	ErrCardWordEmpty = errors.New("card word cannot be empty")
)

// Card represents one vocabulary item of the bundled dataset.
// Meaning and Sentence may carry simple inline markup (<b>, <i>, <br> ...)
// and are rendered by the markup package, never trusted as-is.
//
// Cards are values: once loaded from the dataset they are never mutated,
// only copied between the deck and the mistake set.
type Card struct {
	ID       int    `json:"id"`
	Word     string `json:"word"`
	Meaning  string `json:"meaning"`
	Sentence string `json:"sentence"`
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c Card) Validate() error {
	if c.ID == 0 {
		return ErrCardIDEmpty
	}

	if strings.TrimSpace(c.Word) == "" {
		return ErrCardWordEmpty
	}

	return nil
}
