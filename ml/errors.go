// errors.go - Fehlertypen fuer Array- und Reduktions-Operationen
// Sentinel-Fehler werden mit fmt.Errorf("%w") um Kontext ergaenzt,
// Aufrufer pruefen mit errors.Is / errors.As.
package ml

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAxis is returned when an axis is out of range after
	// negative-index normalization.
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrUnsupportedType is returned for element types or (source, output)
	// type pairs that no operation table covers.
	ErrUnsupportedType = errors.New("unsupported type combination")

	// ErrShapeMismatch is returned when data does not fit the requested shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrWalkerDesync signals that the axis and output coordinate walkers did
	// not exhaust together. It indicates a bug, not a bad input.
	ErrWalkerDesync = errors.New("coordinate walkers out of sync")
)

// UnsupportedTypeError describes a (source, output) pair an operation can't
// handle. It matches ErrUnsupportedType with errors.Is.
type UnsupportedTypeError struct {
	Op   string
	From DType
	To   DType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: %v -> %v: %v", e.Op, e.From, e.To, ErrUnsupportedType)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// NormalizeAxis maps a possibly negative axis into [0, rank).
func NormalizeAxis(axis, rank int) (int, error) {
	n := axis
	if n < 0 {
		n += rank
	}

	if n < 0 || n >= rank {
		return 0, fmt.Errorf("%w: axis %d for array of rank %d", ErrInvalidAxis, axis, rank)
	}

	return n, nil
}
