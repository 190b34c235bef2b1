package session

import (
	"github.com/phrazzld/vocab-drill/internal/domain"
)

// State is an immutable snapshot of a drill session.
type State struct {
	// Mode selects the deck source.
	Mode domain.Mode
	// Deck is the shuffled working set for the current mode.
	Deck []domain.Card
	// Mistakes is the insertion-ordered mistake set, unique by card ID.
	Mistakes []domain.Card
	// Cursor is the 0-based index of the current card in Deck.
	Cursor int
	// Revealed reports whether the current card's meaning is shown.
	Revealed bool
}

// Current returns the card under the cursor. ok is false for an empty deck.
func (s State) Current() (card domain.Card, ok bool) {
	if len(s.Deck) == 0 {
		return domain.Card{}, false
	}
	return s.Deck[normalizeCursor(s.Cursor, len(s.Deck))], true
}

// AllCleared reports the terminal display condition: every mistake has been
// answered correctly while reviewing mistakes.
func (s State) AllCleared() bool {
	return s.Mode == domain.ModeMistakes && len(s.Deck) == 0
}

// CanSwitchTo reports whether the mode control for m is enabled.
// Switching to the active mode is disabled, and mistakes mode additionally
// requires a non-empty mistake set.
func (s State) CanSwitchTo(m domain.Mode) bool {
	if !m.Valid() || m == s.Mode {
		return false
	}
	if m == domain.ModeMistakes {
		return len(s.Mistakes) > 0
	}
	return true
}

// MistakeCount is the number of cards currently in the mistake set.
func (s State) MistakeCount() int {
	return len(s.Mistakes)
}

// HasMistake reports whether the card with id is in the mistake set.
func (s State) HasMistake(id int) bool {
	return containsCard(s.Mistakes, id)
}

// Position returns the 1-based position of the current card and the deck
// size. An empty deck reports 0 of 0.
func (s State) Position() (current, total int) {
	if len(s.Deck) == 0 {
		return 0, 0
	}
	return normalizeCursor(s.Cursor, len(s.Deck)) + 1, len(s.Deck)
}

// clone returns a deep copy so that a transition never writes into the
// backing arrays of the snapshot it was derived from.
func (s State) clone() State {
	next := s
	next.Deck = append([]domain.Card(nil), s.Deck...)
	next.Mistakes = append([]domain.Card(nil), s.Mistakes...)
	return next
}
