package repository

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifier is returned when an id is not a canonical UUID. The store is
// never queried in that case.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// PersistenceError wraps a store failure with the operation that hit it
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

func invalidIdentifier(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
}
