package usecase

import "errors"

// Credential errors, surfaced to the client as 400s.
var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
)

// ErrNoteNotFound is returned when a note id matches nothing.
var ErrNoteNotFound = errors.New("note not found")

// ValidationError rejects a request before any permission check or store
// write takes effect.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ForbiddenError is an authorization denial; the message names the rule
// that was violated.
type ForbiddenError string

func (e ForbiddenError) Error() string { return string(e) }
