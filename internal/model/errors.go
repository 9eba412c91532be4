package model

import "errors"

var (
	// ErrNotFound is returned when no employee has the requested id.
	ErrNotFound = errors.New("employee not found")
	// ErrDuplicateEmail is returned when another employee already holds
	// the normalized email.
	ErrDuplicateEmail = errors.New("email already exists")
)
