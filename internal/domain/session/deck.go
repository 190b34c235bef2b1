package session

import (
	"github.com/samber/lo"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// BuildDeck produces the unshuffled deck for mode.
//
// In revision mode it flattens the first groupLimit groups of ds into one
// Card per entry, in source order. Entries missing back-side fields are
// skipped. In mistakes mode the deck is a copy of the mistake set; an empty
// mistake set yields an empty deck, which is a valid state.
func BuildDeck(mode domain.Mode, ds domain.Dataset, groupLimit int, mistakes []domain.Card) []domain.Card {
	if mode == domain.ModeMistakes {
		deck := make([]domain.Card, len(mistakes))
		copy(deck, mistakes)
		return deck
	}

	return lo.FlatMap(ds.Prefix(groupLimit), func(g domain.Group, _ int) []domain.Card {
		return lo.FilterMap(g.Cards, func(e domain.Entry, _ int) (domain.Card, bool) {
			return e.Card()
		})
	})
}

// spliceCard returns a copy of cards with every card carrying id removed.
func spliceCard(cards []domain.Card, id int) []domain.Card {
	return lo.Filter(cards, func(c domain.Card, _ int) bool {
		return c.ID != id
	})
}

// containsCard reports whether cards holds a card with the given id.
func containsCard(cards []domain.Card, id int) bool {
	return lo.ContainsBy(cards, func(c domain.Card) bool {
		return c.ID == id
	})
}

// normalizeCursor maps cursor onto a valid index of a deck of length n.
// The drill wraps around like an infinite carousel, so an index that runs off
// the end returns to the first card. An empty deck always has cursor 0.
func normalizeCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	return cursor % n
}
