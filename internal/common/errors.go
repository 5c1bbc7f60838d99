// Package common defines shared constants and sentinel errors used across
// the console, the scripting CLI and the development API server. Callers
// should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Remote API errors. ErrRemote covers any non-success response,
	// ErrUnavailable covers transport faults (connection refused, timeouts).
	ErrRemote      = errors.New("remote request failed")
	ErrUnavailable = errors.New("server unavailable")

	// Controller flow errors.
	ErrBusy       = errors.New("another change is still in flight")
	ErrMissingID  = errors.New("entity has no identifier")
	ErrFormClosed = errors.New("form is not open")

	// Catalog errors.
	ErrUnknownKind = errors.New("unknown resource kind")
)
