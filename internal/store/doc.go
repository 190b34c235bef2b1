// Package store defines the persistence interfaces for drill sessions and the
// errors shared by their implementations. Concrete stores live under
// internal/platform.
package store
