// Package session implements the drill state machine: deck construction,
// Fisher-Yates shuffling, mistake tracking, the know / don't-know response
// handler, review-mode switching and the per-card reveal toggle.
//
// Every transition is a pure function from one State snapshot to the next.
// A State is never mutated in place and never shares backing arrays with its
// successor, so snapshots can be stored, compared and rendered freely by any
// surface (HTTP page, JSON API or terminal) without additional locking.
package session
