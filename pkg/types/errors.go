package types

import "errors"

// Core operation errors. All failures in the core are programming or usage
// errors raised synchronously to the caller; nothing is retried internally.
var (
	ErrConflictingTarget = errors.New("values and prototype redirects are mutually exclusive")
	ErrNoActiveNote      = errors.New("no active note in context")
	ErrNoteNotFound      = errors.New("note not found")
	ErrUnimplemented     = errors.New("operation not supported by collaborator")
)
