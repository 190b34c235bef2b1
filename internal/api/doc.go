// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It serves the drill page for browsers and a JSON
// API over the same session service, translating HTTP concerns to drill
// operations.
package api
