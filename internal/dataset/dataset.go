package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// Dataset loading errors
var (
	// ErrEmptyDataset is returned when the source holds no groups.
	ErrEmptyDataset = errors.New("dataset has no groups")

	// ErrMalformedEntry is returned when an entry lacks an ID or one of its
	// word, meaning and sentence fields.
	ErrMalformedEntry = errors.New("malformed dataset entry")

	// ErrDuplicateCardID is returned when two entries share an ID.
	ErrDuplicateCardID = errors.New("duplicate card ID")
)

//go:embed data/vocab.json
var embedded []byte

// Default returns the dataset bundled with the binary.
func Default() (domain.Dataset, error) {
	ds, err := Decode(bytes.NewReader(embedded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode embedded dataset: %w", err)
	}
	return ds, nil
}

// LoadFile reads a dataset from path.
func LoadFile(path string) (domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}
	return ds, nil
}

// Load returns the dataset at path, or the embedded one when path is empty,
// and validates the first groupLimit groups that revision decks are built from.
func Load(path string, groupLimit int) (domain.Dataset, error) {
	var (
		ds  domain.Dataset
		err error
	)
	if path == "" {
		ds, err = Default()
	} else {
		ds, err = LoadFile(path)
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(ds, groupLimit); err != nil {
		return nil, err
	}
	return ds, nil
}

// Decode parses a dataset from r. It rejects a source with no groups but
// leaves entry checks to Validate.
func Decode(r io.Reader) (domain.Dataset, error) {
	var ds domain.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("invalid dataset JSON: %w", err)
	}
	if len(ds) == 0 {
		return nil, ErrEmptyDataset
	}
	return ds, nil
}

// Validate checks the first groupLimit groups of ds: every entry must become
// a valid Card and card IDs must be unique. Groups past the limit are never
// read and are not checked.
func Validate(ds domain.Dataset, groupLimit int) error {
	if len(ds) == 0 {
		return ErrEmptyDataset
	}

	consumed := ds.Prefix(groupLimit)
	seen := make(map[int]struct{}, consumed.Size())
	for g, group := range consumed {
		for i, e := range group.Cards {
			card, ok := e.Card()
			if !ok {
				return fmt.Errorf("group %d entry %d: %w", g, i, ErrMalformedEntry)
			}
			if err := card.Validate(); err != nil {
				return fmt.Errorf("group %d entry %d: %w: %w", g, i, ErrMalformedEntry, err)
			}
			if _, dup := seen[card.ID]; dup {
				return fmt.Errorf("group %d entry %d: %w: %d", g, i, ErrDuplicateCardID, card.ID)
			}
			seen[card.ID] = struct{}{}
		}
	}

	return nil
}
