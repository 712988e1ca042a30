package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials intentionally does not distinguish a missing
	// user from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
)

// ValidationError reports malformed input, caught before any I/O.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DuplicateError reports a uniqueness conflict on the named field.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string { return e.Field + " already exists" }

// StorageError wraps a connection or transaction failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
