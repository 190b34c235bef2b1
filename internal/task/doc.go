// Package task runs background maintenance alongside the HTTP server. The
// Sweeper periodically evicts drill sessions that have been idle longer than
// their time-to-live, so abandoned browser sessions do not accumulate.
package task
