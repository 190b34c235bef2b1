package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// entry builds a dataset entry with the three back-side fields.
func entry(id int, word string) domain.Entry {
	return domain.Entry{
		ID: id,
		Back: []domain.Field{
			{Content: word},
			{Content: "meaning of " + word},
			{Content: "a sentence with <b>" + word + "</b>"},
		},
	}
}

// twoByTwo is the 2 groups x 2 entries dataset of the reference scenario.
func twoByTwo() domain.Dataset {
	return domain.Dataset{
		{Cards: []domain.Entry{entry(1, "abate"), entry(2, "bolster")}},
		{Cards: []domain.Entry{entry(3, "cajole"), entry(4, "dearth")}},
	}
}

func newTestController(t *testing.T, ds domain.Dataset) *Controller {
	t.Helper()
	c, err := NewController(ds, NewDefaultParams(), NewSource(42))
	require.NoError(t, err)
	return c
}

func ids(cards []domain.Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

// moveTo returns s with the cursor on the card carrying id.
func moveTo(t *testing.T, s State, id int) State {
	t.Helper()
	for i, c := range s.Deck {
		if c.ID == id {
			s.Cursor = i
			return s
		}
	}
	t.Fatalf("card %d not in deck %v", id, ids(s.Deck))
	return s
}

func TestNewController(t *testing.T) {
	t.Parallel()

	_, err := NewController(twoByTwo(), NewDefaultParams(), nil)
	assert.ErrorIs(t, err, ErrNilSource)

	c, err := NewController(twoByTwo(), Params{}, NewSource(1))
	require.NoError(t, err)
	assert.Equal(t, DefaultGroupLimit, c.params.GroupLimit, "zero group limit falls back to default")
}

func TestStart(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())

	s := c.Start()

	assert.Equal(t, domain.ModeRevision, s.Mode)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, ids(s.Deck))
	assert.Empty(t, s.Mistakes)
	assert.Equal(t, 0, s.Cursor)
	assert.False(t, s.Revealed)
	assert.False(t, s.CanSwitchTo(domain.ModeMistakes), "mistakes mode disabled with no mistakes")
	assert.False(t, s.CanSwitchTo(domain.ModeRevision), "active mode is disabled")
}

func TestRevisionDeckUsesGroupPrefix(t *testing.T) {
	t.Parallel()

	ds := make(domain.Dataset, 15)
	id := 1
	for g := range ds {
		for k := 0; k < 3; k++ {
			ds[g].Cards = append(ds[g].Cards, entry(id, "w"))
			id++
		}
	}
	c := newTestController(t, ds)

	s := c.Start()
	assert.Len(t, s.Deck, 13*3)
	assert.Equal(t, 13*3, c.RevisionSize())
	for _, card := range s.Deck {
		assert.LessOrEqual(t, card.ID, 13*3, "cards beyond the 13th group must not be dealt")
	}

	// Rebuilding by leaving and re-entering revision keeps the size.
	s = c.Unknown(s)
	s, err := c.SwitchMode(s, domain.ModeMistakes)
	require.NoError(t, err)
	s, err = c.SwitchMode(s, domain.ModeRevision)
	require.NoError(t, err)
	assert.Len(t, s.Deck, 13*3)
}

func TestReferenceScenario(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())

	s := c.Start()
	require.ElementsMatch(t, []int{1, 2, 3, 4}, ids(s.Deck))

	s = c.Unknown(moveTo(t, s, 2))
	assert.Equal(t, []int{2}, ids(s.Mistakes))

	s = c.Known(moveTo(t, s, 1))
	assert.Equal(t, []int{2}, ids(s.Mistakes))

	s, err := c.SwitchMode(s, domain.ModeMistakes)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(s.Deck))
	assert.Equal(t, 0, s.Cursor)

	s = c.Known(s)
	assert.Empty(t, s.Deck)
	assert.Empty(t, s.Mistakes)
	assert.True(t, s.AllCleared())
	assert.True(t, s.CanSwitchTo(domain.ModeRevision), "revision stays enabled after clearing")
}

func TestUnknownIsIdempotent(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())

	s := c.Start()
	first, _ := s.Current()

	s = c.Unknown(s)
	s.Cursor = 0 // back on the same card
	s = c.Unknown(s)

	assert.Equal(t, []int{first.ID}, ids(s.Mistakes))
}

func TestUnknownPreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())

	s := c.Start()
	var want []int
	for i := 0; i < 3; i++ {
		card, ok := s.Current()
		require.True(t, ok)
		want = append(want, card.ID)
		s = c.Unknown(s)
	}

	assert.Equal(t, want, ids(s.Mistakes))
	assert.Equal(t, 3, s.Cursor)
}

func TestKnownInMistakesMode(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())

	s := c.Start()
	for i := 0; i < 3; i++ {
		s = c.Unknown(s)
	}
	s, err := c.SwitchMode(s, domain.ModeMistakes)
	require.NoError(t, err)
	require.Len(t, s.Deck, 3)

	s.Cursor = 1
	x, _ := s.Current()
	following := s.Deck[2]

	next := c.Known(s)

	assert.Len(t, next.Deck, 2)
	assert.NotContains(t, ids(next.Deck), x.ID)
	assert.False(t, next.HasMistake(x.ID))
	assert.Equal(t, 1, next.Cursor, "cursor keeps its index after the splice")
	cur, _ := next.Current()
	assert.Equal(t, following.ID, cur.ID, "the following card shifts into place")

	// The earlier snapshot is untouched.
	assert.Len(t, s.Deck, 3)
	assert.True(t, s.HasMistake(x.ID))
}

func TestKnownOnLastCardWraps(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())

	s := c.Start()
	s = c.Unknown(s)
	s = c.Unknown(s)
	s, err := c.SwitchMode(s, domain.ModeMistakes)
	require.NoError(t, err)

	s.Cursor = len(s.Deck) - 1
	s = c.Known(s)

	assert.Len(t, s.Deck, 1)
	assert.Equal(t, 0, s.Cursor)
	_, ok := s.Current()
	assert.True(t, ok)
}

func TestKnownInRevisionAdvances(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())

	s := c.Start()
	s = c.Unknown(s) // card at 0 becomes a mistake
	s.Cursor = 0
	missed, _ := s.Current()

	s = c.Known(s)

	assert.Len(t, s.Deck, 4, "revision deck never shrinks")
	assert.Equal(t, 1, s.Cursor)
	assert.False(t, s.HasMistake(missed.ID), "known removes the card from the mistake set in any mode")
}

func TestCursorWrapsAtDeckEnd(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())

	s := c.Start()
	for i := 0; i < 4; i++ {
		s = c.Known(s)
	}
	assert.Equal(t, 0, s.Cursor)

	for i := 0; i < 9; i++ {
		s = c.Unknown(s)
		assert.GreaterOrEqual(t, s.Cursor, 0)
		assert.Less(t, s.Cursor, len(s.Deck))
	}
	assert.Len(t, s.Mistakes, 4)
}

func TestResponsesResetReveal(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())

	s := c.Reveal(c.Start())
	require.True(t, s.Revealed)
	assert.False(t, c.Known(s).Revealed)
	assert.False(t, c.Unknown(s).Revealed)

	again := c.Reveal(s)
	assert.True(t, again.Revealed, "reveal is idempotent")
}

func TestSwitchModeGuards(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())
	s := c.Start()

	tests := []struct {
		name    string
		state   State
		mode    domain.Mode
		wantErr error
	}{
		{name: "mistakes with empty set", state: s, mode: domain.ModeMistakes, wantErr: ErrTransitionDisabled},
		{name: "revision while in revision", state: s, mode: domain.ModeRevision, wantErr: ErrTransitionDisabled},
		{name: "unknown mode", state: s, mode: domain.Mode("random"), wantErr: domain.ErrInvalidMode},
		{name: "mistakes with a mistake", state: c.Unknown(s), mode: domain.ModeMistakes},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, err := c.SwitchMode(tc.state, tc.mode)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.state, next, "disabled transitions leave the state unchanged")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.mode, next.Mode)
			assert.ElementsMatch(t, ids(tc.state.Mistakes), ids(next.Deck))
		})
	}
}

func TestSwitchModeResetsCursorAndReveal(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())

	s := c.Start()
	s = c.Unknown(s)
	s = c.Unknown(s)
	s = c.Reveal(s)

	next, err := c.SwitchMode(s, domain.ModeMistakes)
	require.NoError(t, err)
	assert.Equal(t, 0, next.Cursor)
	assert.False(t, next.Revealed)
	assert.ElementsMatch(t, ids(s.Mistakes), ids(next.Deck))
}

func TestEmptyDeckIsTotal(t *testing.T) {
	t.Parallel()
	c := newTestController(t, domain.Dataset{})

	s := c.Start()
	assert.Empty(t, s.Deck)
	assert.Equal(t, s, c.Known(s))
	assert.Equal(t, s, c.Unknown(s))
	assert.Equal(t, s, c.Reveal(s))

	cur, total := s.Position()
	assert.Zero(t, cur)
	assert.Zero(t, total)
	assert.False(t, s.AllCleared(), "an empty revision deck is not the cleared display")
}

func TestRevealOnClearedDisplay(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())

	s := moveTo(t, c.Start(), 2)
	s = c.Unknown(s)
	s, err := c.SwitchMode(s, domain.ModeMistakes)
	require.NoError(t, err)
	s = c.Known(s)
	require.True(t, s.AllCleared())

	next := c.Reveal(s)
	assert.False(t, next.Revealed, "nothing to reveal once every mistake is cleared")
	assert.Equal(t, s, next)
}

func TestRespond(t *testing.T) {
	t.Parallel()
	c := newTestController(t, twoByTwo())
	s := c.Start()

	next, err := c.Respond(s, domain.ResponseUnknown)
	require.NoError(t, err)
	assert.Equal(t, 1, next.MistakeCount())

	_, err = c.Respond(s, domain.Response("skip"))
	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
}
