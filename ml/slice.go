// slice.go - Slice-Deskriptoren fuer Sub-Views
// Ein Slice pinnt eine Achse auf einen Index oder waehlt einen Bereich
// (start:stop:step) aus. Eine Liste von Slices beschreibt eine Sub-View.
package ml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Slice selects part of a single axis. The zero value selects nothing
// meaningful; use All, Index or Range to construct one.
type Slice struct {
	Start, Stop, Step int

	// index pins the axis to Start and removes it from the resulting view.
	index bool
}

// All selects the full extent of an axis.
func All() Slice {
	return Slice{Start: 0, Stop: math.MaxInt, Step: 1}
}

// Index pins an axis to a single coordinate. Negative values count from the end.
func Index(i int) Slice {
	return Slice{Start: i, Stop: i + 1, Step: 1, index: true}
}

// Range selects [start, stop) with step 1. Negative values count from the end.
func Range(start, stop int) Slice {
	return Slice{Start: start, Stop: stop, Step: 1}
}

// RangeStep selects [start, stop) taking every step-th element.
func RangeStep(start, stop, step int) Slice {
	return Slice{Start: start, Stop: stop, Step: step}
}

// IsIndex reports whether the slice pins its axis to a single coordinate.
func (s Slice) IsIndex() bool {
	return s.index
}

func (s Slice) String() string {
	if s.index {
		return strconv.Itoa(s.Start)
	}

	var sb strings.Builder
	if s.Start != 0 {
		sb.WriteString(strconv.Itoa(s.Start))
	}
	sb.WriteString(":")
	if s.Stop != math.MaxInt {
		sb.WriteString(strconv.Itoa(s.Stop))
	}
	if s.Step != 1 {
		fmt.Fprintf(&sb, ":%d", s.Step)
	}
	return sb.String()
}

// resolve clamps the slice against an axis of extent dim and returns the first
// coordinate and the number of selected elements.
func (s Slice) resolve(dim int) (start, n int, err error) {
	if s.index {
		i := s.Start
		if i < 0 {
			i += dim
		}
		if i < 0 || i >= dim {
			return 0, 0, fmt.Errorf("%w: index %d out of range for extent %d", ErrShapeMismatch, s.Start, dim)
		}
		return i, 1, nil
	}

	if s.Step <= 0 {
		return 0, 0, fmt.Errorf("%w: slice step must be positive, got %d", ErrShapeMismatch, s.Step)
	}

	start, stop := s.Start, s.Stop
	if start < 0 {
		start = max(start+dim, 0)
	}
	if stop < 0 {
		stop += dim
	}
	start = min(start, dim)
	stop = min(max(stop, 0), dim)

	if stop <= start {
		return start, 0, nil
	}

	return start, (stop - start + s.Step - 1) / s.Step, nil
}
