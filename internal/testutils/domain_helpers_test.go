package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTestEntry(t *testing.T) {
	t.Parallel()

	card, ok := NewTestEntry(7, "lucid").Card()
	assert.True(t, ok)
	assert.Equal(t, 7, card.ID)
	assert.Equal(t, "lucid", card.Word)
	assert.Equal(t, "meaning of lucid", card.Meaning)

	card, ok = NewTestEntry(8, "terse", WithMeaning("brief"), WithSentence("Be terse.")).Card()
	assert.True(t, ok)
	assert.Equal(t, "brief", card.Meaning)
	assert.Equal(t, "Be terse.", card.Sentence)

	_, ok = NewTestEntry(9, "vapid", WithoutSentence()).Card()
	assert.False(t, ok, "entries without a sentence are not cards")
}

func TestSmallDataset(t *testing.T) {
	t.Parallel()

	ds := SmallDataset()
	assert.Len(t, ds, 2)
	assert.Equal(t, 4, ds.Size())

	c := MustNewController(t, ds, 1)
	assert.Equal(t, 4, c.RevisionSize())
}
