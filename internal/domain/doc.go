// Package domain contains the core vocabulary entities (cards, dataset
// groups, review modes and responses) independent of any rendering surface.
// The session state machine that drives a drill lives in the session
// subpackage.
package domain
