package session

import (
	"errors"
	"fmt"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// Common errors
var (
	// ErrTransitionDisabled is returned for a mode switch whose control is
	// disabled: the target mode is already active, or mistakes mode was
	// requested with an empty mistake set. It is an affordance guard, the
	// state is left unchanged.
	ErrTransitionDisabled = errors.New("mode transition disabled")

	// ErrNilSource is returned when a controller is built without a random source.
	ErrNilSource = errors.New("random source cannot be nil")
)

// Controller owns the drill transitions. It holds only read-only inputs (the
// dataset, the parameters and the random source); all mutable session data
// lives in the State values it returns.
type Controller struct {
	dataset domain.Dataset
	params  Params
	src     Source
}

// NewController creates a Controller over a read-only dataset.
func NewController(ds domain.Dataset, params Params, src Source) (*Controller, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if params.GroupLimit <= 0 {
		params.GroupLimit = DefaultGroupLimit
	}

	return &Controller{
		dataset: ds,
		params:  params,
		src:     src,
	}, nil
}

// RevisionSize is the number of cards a revision deck holds.
func (c *Controller) RevisionSize() int {
	return c.dataset.Prefix(c.params.GroupLimit).Size()
}

// Start returns the initial state: revision mode over a freshly shuffled deck
// and an empty mistake set.
func (c *Controller) Start() State {
	return c.rebuild(State{Mode: domain.ModeRevision})
}

// SwitchMode moves the session to mode m and rebuilds the deck.
// It returns ErrTransitionDisabled, together with the unchanged state, when
// the control for m is disabled.
func (c *Controller) SwitchMode(s State, m domain.Mode) (State, error) {
	if !m.Valid() {
		return s, fmt.Errorf("switch to %q: %w", m, domain.ErrInvalidMode)
	}
	if !s.CanSwitchTo(m) {
		return s, fmt.Errorf("switch to %s: %w", m, ErrTransitionDisabled)
	}

	next := s.clone()
	next.Mode = m
	return c.rebuild(next), nil
}

// Respond dispatches a self-assessment to Known or Unknown.
func (c *Controller) Respond(s State, r domain.Response) (State, error) {
	switch r {
	case domain.ResponseKnown:
		return c.Known(s), nil
	case domain.ResponseUnknown:
		return c.Unknown(s), nil
	default:
		return s, fmt.Errorf("respond %q: %w", r, domain.ErrInvalidResponse)
	}
}

// Known handles "I know this meaning!" for the current card.
//
// The card always leaves the mistake set. In mistakes mode it is also spliced
// out of the deck, so the following card moves under the unchanged cursor;
// in revision mode the cursor advances and the deck is left intact.
// On an empty deck Known is a no-op.
func (c *Controller) Known(s State) State {
	card, ok := s.Current()
	if !ok {
		return s
	}

	next := s.clone()
	next.Mistakes = spliceCard(next.Mistakes, card.ID)

	if next.Mode == domain.ModeMistakes {
		next.Deck = spliceCard(next.Deck, card.ID)
		next.Cursor = normalizeCursor(next.Cursor, len(next.Deck))
	} else {
		next.Cursor = normalizeCursor(next.Cursor+1, len(next.Deck))
	}

	next.Revealed = false
	return next
}

// Unknown handles "I don't know this meaning!" for the current card.
// The card joins the mistake set unless already present and the cursor
// advances in either mode. On an empty deck Unknown is a no-op.
func (c *Controller) Unknown(s State) State {
	card, ok := s.Current()
	if !ok {
		return s
	}

	next := s.clone()
	if !containsCard(next.Mistakes, card.ID) {
		next.Mistakes = append(next.Mistakes, card)
	}

	next.Cursor = normalizeCursor(next.Cursor+1, len(next.Deck))
	next.Revealed = false
	return next
}

// Reveal shows the meaning and sentence of the current card. There is no
// way back to hidden before the next card. With no current card, as on the
// cleared display, Reveal is a no-op.
func (c *Controller) Reveal(s State) State {
	if _, ok := s.Current(); !ok || s.Revealed {
		return s
	}
	next := s.clone()
	next.Revealed = true
	return next
}

// rebuild replaces the deck for the state's mode, shuffles it and resets the
// cursor and reveal flag.
func (c *Controller) rebuild(s State) State {
	deck := BuildDeck(s.Mode, c.dataset, c.params.GroupLimit, s.Mistakes)
	s.Deck = Shuffle(deck, c.src)
	s.Cursor = 0
	s.Revealed = false
	if s.Mistakes == nil {
		s.Mistakes = []domain.Card{}
	}
	return s
}
