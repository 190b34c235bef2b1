// Package tui implements the terminal drill as a bubbletea program. The
// model owns one session.State and applies controller transitions on key
// presses; it is driven by the bubbletea event loop only.
package tui
