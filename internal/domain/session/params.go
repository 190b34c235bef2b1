package session

// DefaultGroupLimit is the number of leading dataset groups that make up the
// revision deck.
const DefaultGroupLimit = 13

// Params defines the configurable parameters of the deck builder.
type Params struct {
	// GroupLimit is how many leading groups of the dataset are flattened
	// into the revision deck.
	GroupLimit int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() Params {
	return Params{
		GroupLimit: DefaultGroupLimit,
	}
}

// NewParams creates Params, falling back to defaults for unset values.
func NewParams(groupLimit int) Params {
	params := NewDefaultParams()
	if groupLimit > 0 {
		params.GroupLimit = groupLimit
	}
	return params
}
