package domain

// Back-side field positions of a dataset entry.
const (
	FieldWord     = 0
	FieldMeaning  = 1
	FieldSentence = 2
)

// Dataset is the static, read-only vocabulary source: an ordered list of
// groups, each holding a sequence of entries.
type Dataset []Group

// Group is one lesson-sized chunk of entries.
type Group struct {
	Title string  `json:"title,omitempty"`
	Cards []Entry `json:"cards"`
}

// Entry is a raw dataset record. Back holds the ordered back-side fields:
// index 0 is the word, 1 the meaning and 2 the example sentence.
type Entry struct {
	ID   int     `json:"id"`
	Back []Field `json:"back"`
}

// Field is a single back-side value of an entry.
type Field struct {
	Content string `json:"content"`
}

// Card converts the entry to a Card. ok is false when the entry does not
// carry all three back-side fields.
func (e Entry) Card() (card Card, ok bool) {
	if len(e.Back) <= FieldSentence {
		return Card{}, false
	}
	return Card{
		ID:       e.ID,
		Word:     e.Back[FieldWord].Content,
		Meaning:  e.Back[FieldMeaning].Content,
		Sentence: e.Back[FieldSentence].Content,
	}, true
}

// Size returns the number of entries across all groups.
func (d Dataset) Size() int {
	n := 0
	for _, g := range d {
		n += len(g.Cards)
	}
	return n
}

// Prefix returns the first n groups, or all of them when fewer exist.
func (d Dataset) Prefix(n int) Dataset {
	if n < 0 {
		n = 0
	}
	if n > len(d) {
		n = len(d)
	}
	return d[:n]
}
