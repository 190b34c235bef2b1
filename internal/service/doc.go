// Package service contains the application-specific use cases.
//
// SessionService orchestrates interactions between the pure drill controller
// (internal/domain/session), the session store (internal/store) and the event
// emitter (internal/events). Each mutating call is applied as a single atomic
// store modification, then logged and published as a SessionEvent.
//
// Error Handling:
//   - Store "not found" errors are translated to ErrSessionNotFound
//   - Domain errors (session.ErrTransitionDisabled, domain.ErrInvalidMode, ...)
//     stay reachable through errors.Is on the returned SessionServiceError
//
// The service layer depends on domain types and the store interface, but
// never on specific infrastructure implementations.
package service
