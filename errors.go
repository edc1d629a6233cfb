package vtkgo

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadySet is returned when a section that may be populated at most
	// once (header, points) receives a second call, or when a finalized
	// Writer is mutated.
	ErrAlreadySet = errors.New("vtkgo: already set")

	// ErrEmptyInput is returned when a builder call receives no data, e.g.
	// an empty point list or a zero grid dimension.
	ErrEmptyInput = errors.New("vtkgo: empty input")

	// ErrMissingPrerequisite is returned when an operation depends on a
	// section that has not been populated yet, e.g. topology or attributes
	// before InsertPoints, or Finalize before header and points.
	ErrMissingPrerequisite = errors.New("vtkgo: missing prerequisite")
)

// CountMismatchError indicates that an array length or a derived count
// disagrees with the canonical count it must match.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type CountMismatchError struct {
	What     string
	Expected int
	Actual   int
	cause    error
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("vtkgo: %s count mismatch: expected %d, got %d", e.What, e.Expected, e.Actual)
}

func (e *CountMismatchError) Unwrap() error { return e.cause }
