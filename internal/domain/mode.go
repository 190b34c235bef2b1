package domain

// Mode selects the source of the active deck.
type Mode string

// Possible review modes
const (
	// ModeRevision reviews a shuffled sample of the full dataset.
	ModeRevision Mode = "revision"
	// ModeMistakes reviews only the cards currently in the mistake set.
	ModeMistakes Mode = "mistakes"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeRevision, ModeMistakes:
		return true
	default:
		return false
	}
}

// ParseMode converts a raw string (from a form, JSON body or flag) to a Mode.
func ParseMode(raw string) (Mode, error) {
	m := Mode(raw)
	if !m.Valid() {
		return "", ErrInvalidMode
	}
	return m, nil
}

// Response is the learner's self-assessment of the current card.
type Response string

// Possible responses
const (
	ResponseKnown   Response = "known"
	ResponseUnknown Response = "unknown"
)

// Valid reports whether r is one of the known responses.
func (r Response) Valid() bool {
	return r == ResponseKnown || r == ResponseUnknown
}
