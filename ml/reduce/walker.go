// walker.go - Koordinaten-Walker fuer Achsen-Reduktionen
//
// Enthaelt:
// - AxisWalker: zaehlt alle Index-Kombinationen ausser der Reduktions-Achse auf
//   und liefert pro Schritt die Slices fuer genau einen Lauf entlang der Achse
// - OutputWalker: liefert die passenden flachen Ausgabe-Indizes im Gleichschritt
//
// Beide laufen in Zeilen-Reihenfolge; der Engine-Loop verlaesst sich darauf,
// dass sie gleich viele Schritte machen.
package reduce

import "github.com/7blacky7/ndreduce/ml"

// AxisWalker enumerates every combination of indices over all axes except one.
// It starts positioned on the first combination: consume Slices, then call Next.
type AxisWalker struct {
	dims   []int
	axis   int
	slices []ml.Slice
	done   bool
}

// NewAxisWalker returns a walker over shape with axis as the distinguished axis.
// axis must already be normalized.
func NewAxisWalker(shape ml.Shape, axis int) *AxisWalker {
	w := &AxisWalker{
		dims:   shape.Dims(),
		axis:   axis,
		slices: make([]ml.Slice, shape.Rank()),
		done:   shape.IsEmpty(),
	}

	for i := range w.slices {
		w.slices[i] = ml.Index(0)
	}
	w.slices[axis] = ml.All()
	return w
}

// Slices returns the current slice descriptor. The returned slice is owned by
// the walker and changes on Next.
func (w *AxisWalker) Slices() []ml.Slice {
	if w.done {
		return nil
	}
	return w.slices
}

// Next advances to the next combination. It returns false once every
// combination has been visited.
func (w *AxisWalker) Next() ([]ml.Slice, bool) {
	if w.done {
		return nil, false
	}

	for i := len(w.dims) - 1; i >= 0; i-- {
		if i == w.axis {
			continue
		}

		if w.slices[i].Start+1 < w.dims[i] {
			w.slices[i] = ml.Index(w.slices[i].Start + 1)
			return w.slices, true
		}
		w.slices[i] = ml.Index(0)
	}

	w.done = true
	return nil, false
}

// OutputWalker enumerates the flat buffer indices of every coordinate of the
// reduced shape in row-major order.
type OutputWalker struct {
	cursor *ml.Cursor
	index  int
	done   bool
}

// NewOutputWalker returns a walker positioned on the first index of shape.
func NewOutputWalker(shape ml.Shape) *OutputWalker {
	w := &OutputWalker{cursor: ml.NewCursor(shape)}
	if w.cursor.HasNext() {
		w.index = w.cursor.Next()
	} else {
		w.done = true
	}
	return w
}

// Index returns the current output index.
func (w *OutputWalker) Index() int {
	return w.index
}

// Next advances and returns the new output index, or false when exhausted.
func (w *OutputWalker) Next() (int, bool) {
	if w.done || !w.cursor.HasNext() {
		w.done = true
		return 0, false
	}

	w.index = w.cursor.Next()
	return w.index, true
}
