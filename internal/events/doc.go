// Package events provides types and interfaces for an event-driven architecture.
//
// The session service emits a SessionEvent for every transition it applies
// (session started, mode switched, card known or unknown, mistakes cleared)
// without knowing who listens. Handlers registered on the emitter turn those
// events into audit log lines and running counters.
//
// The primary components are:
// - SessionEvent: a transition that happened in one drill session
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
