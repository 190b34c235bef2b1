package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/session"
)

// EntryOption customizes an entry built by NewTestEntry.
type EntryOption func(*domain.Entry)

// WithMeaning sets the meaning field.
func WithMeaning(meaning string) EntryOption {
	return func(e *domain.Entry) {
		e.Back[domain.FieldMeaning].Content = meaning
	}
}

// WithSentence sets the example sentence field.
func WithSentence(sentence string) EntryOption {
	return func(e *domain.Entry) {
		e.Back[domain.FieldSentence].Content = sentence
	}
}

// WithoutSentence truncates the back side after the meaning, producing an
// entry the deck builder skips.
func WithoutSentence() EntryOption {
	return func(e *domain.Entry) {
		e.Back = e.Back[:domain.FieldSentence]
	}
}

// NewTestEntry creates a dataset entry with all three back-side fields.
// By default the meaning is "meaning of <word>" and the sentence uses the
// word in italics.
func NewTestEntry(id int, word string, opts ...EntryOption) domain.Entry {
	e := domain.Entry{
		ID: id,
		Back: []domain.Field{
			{Content: word},
			{Content: "meaning of " + word},
			{Content: "They used <i>" + word + "</i> in a sentence."},
		},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestDataset creates a dataset with one group per argument.
func NewTestDataset(groups ...[]domain.Entry) domain.Dataset {
	ds := make(domain.Dataset, len(groups))
	for i, g := range groups {
		ds[i] = domain.Group{Cards: g}
	}
	return ds
}

// SmallDataset returns two groups of two cards with ids 1 to 4.
func SmallDataset() domain.Dataset {
	return NewTestDataset(
		[]domain.Entry{NewTestEntry(1, "abate"), NewTestEntry(2, "bolster")},
		[]domain.Entry{NewTestEntry(3, "cajole"), NewTestEntry(4, "dearth")},
	)
}

// MustNewController creates a drill controller with default parameters and a
// seeded shuffle, failing the test on error.
func MustNewController(t *testing.T, ds domain.Dataset, seed int64) *session.Controller {
	t.Helper()

	c, err := session.NewController(ds, session.NewDefaultParams(), session.NewSource(seed))
	require.NoError(t, err, "Failed to create drill controller")
	return c
}
