package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when inserting a user whose email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)
