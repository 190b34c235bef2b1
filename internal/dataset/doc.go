// Package dataset loads the static vocabulary dataset: a JSON array of
// groups, each holding entries whose back-side fields carry the word, its
// meaning and an example sentence. A default dataset is embedded in the
// binary; a file on disk can replace it through configuration.
package dataset
