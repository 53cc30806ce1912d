// shape.go - Shape-Deskriptor mit Strides und Offset
//
// Enthaelt:
// - Shape: Dimensionen, Strides (in Elementen) und Offset in den Buffer
// - Praedikate: IsEmpty, IsScalar, IsDegenerate, IsContiguous
// - View-Operationen: Slice, AxisRemoved, WithUnitDim, Transpose, Reshape
//
// Eine Shape ist ein Wert; jede Transformation liefert eine neue Shape.
package ml

import (
	"fmt"
	"slices"
	"strings"
)

// Shape describes how a view maps N-dimensional coordinates onto a flat buffer.
type Shape struct {
	dims    []int
	strides []int
	offset  int
}

// NewShape returns a contiguous row-major shape. It panics on negative extents.
func NewShape(dims ...int) Shape {
	for _, d := range dims {
		if d < 0 {
			panic(fmt.Sprintf("shape: negative extent in %v", dims))
		}
	}

	return Shape{
		dims:    slices.Clone(dims),
		strides: rowMajorStrides(dims),
	}
}

func rowMajorStrides(dims []int) []int {
	strides := make([]int, len(dims))
	stride := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= max(dims[i], 1)
	}
	return strides
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s.dims)
}

// Dim returns the extent of axis n.
func (s Shape) Dim(n int) int {
	return s.dims[n]
}

// Stride returns the stride of axis n in elements.
func (s Shape) Stride(n int) int {
	return s.strides[n]
}

// Dims returns a copy of the extents.
func (s Shape) Dims() []int {
	return slices.Clone(s.dims)
}

// Strides returns a copy of the strides.
func (s Shape) Strides() []int {
	return slices.Clone(s.strides)
}

// Offset returns the buffer index of the first element of the view.
func (s Shape) Offset() int {
	return s.offset
}

// Size is the number of elements: 1 for a scalar, 0 if any extent is 0.
func (s Shape) Size() int {
	n := 1
	for _, d := range s.dims {
		n *= d
	}
	return n
}

// IsEmpty reports whether the shape holds no elements.
func (s Shape) IsEmpty() bool {
	return s.Size() == 0
}

// IsScalar reports whether the shape has rank 0.
func (s Shape) IsScalar() bool {
	return len(s.dims) == 0
}

// IsDegenerate reports a rank-1 shape holding a single element. Reductions
// treat it exactly like a scalar.
func (s Shape) IsDegenerate() bool {
	return len(s.dims) == 1 && s.dims[0] == 1
}

// IsContiguous reports whether the view covers its elements densely in
// row-major order. Axes of extent 1 don't affect contiguity.
func (s Shape) IsContiguous() bool {
	stride := 1
	for i := len(s.dims) - 1; i >= 0; i-- {
		if s.dims[i] == 1 {
			continue
		}
		if s.strides[i] != stride {
			return false
		}
		stride *= s.dims[i]
	}
	return true
}

// Equal compares extents only; strides and offset are layout, not shape.
func (s Shape) Equal(o Shape) bool {
	return slices.Equal(s.dims, o.dims)
}

func (s Shape) String() string {
	parts := make([]string, len(s.dims))
	for i, d := range s.dims {
		parts[i] = fmt.Sprint(d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Index maps coordinates to a buffer index. It panics if the number of
// coordinates doesn't match the rank.
func (s Shape) Index(coords ...int) int {
	if len(coords) != len(s.dims) {
		panic(fmt.Sprintf("shape: %d coordinates for rank %d", len(coords), len(s.dims)))
	}

	at := s.offset
	for i, c := range coords {
		at += c * s.strides[i]
	}
	return at
}

// Slice returns the sub-view selected by slices. Missing trailing entries
// select whole axes; Index entries remove their axis from the result.
func (s Shape) Slice(sl ...Slice) (Shape, error) {
	if len(sl) > len(s.dims) {
		return Shape{}, fmt.Errorf("%w: %d slices for rank %d", ErrShapeMismatch, len(sl), len(s.dims))
	}

	out := Shape{
		dims:    make([]int, 0, len(s.dims)),
		strides: make([]int, 0, len(s.dims)),
		offset:  s.offset,
	}

	for axis := range s.dims {
		sel := All()
		if axis < len(sl) {
			sel = sl[axis]
		}

		start, n, err := sel.resolve(s.dims[axis])
		if err != nil {
			return Shape{}, fmt.Errorf("axis %d: %w", axis, err)
		}

		if n > 0 {
			out.offset += start * s.strides[axis]
		}
		if sel.IsIndex() {
			continue
		}

		out.dims = append(out.dims, n)
		out.strides = append(out.strides, s.strides[axis]*sel.Step)
	}

	return out, nil
}

// AxisRemoved drops axis from the shape. Applied to a view whose axis has
// extent 1 the result addresses the same elements.
func (s Shape) AxisRemoved(axis int) Shape {
	return Shape{
		dims:    slices.Delete(slices.Clone(s.dims), axis, axis+1),
		strides: slices.Delete(slices.Clone(s.strides), axis, axis+1),
		offset:  s.offset,
	}
}

// WithUnitDim inserts an axis of extent 1 at position axis (0 <= axis <= rank).
func (s Shape) WithUnitDim(axis int) Shape {
	stride := 1
	if axis < len(s.dims) {
		stride = s.strides[axis] * max(s.dims[axis], 1)
	}

	return Shape{
		dims:    slices.Insert(slices.Clone(s.dims), axis, 1),
		strides: slices.Insert(slices.Clone(s.strides), axis, stride),
		offset:  s.offset,
	}
}

// Transpose permutes the axes. With no arguments the axes are reversed.
func (s Shape) Transpose(perm ...int) (Shape, error) {
	rank := len(s.dims)
	if len(perm) == 0 {
		perm = make([]int, rank)
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	}

	if len(perm) != rank {
		return Shape{}, fmt.Errorf("%w: permutation %v for rank %d", ErrShapeMismatch, perm, rank)
	}

	seen := make([]bool, rank)
	out := Shape{dims: make([]int, rank), strides: make([]int, rank), offset: s.offset}
	for i, p := range perm {
		axis, err := NormalizeAxis(p, rank)
		if err != nil {
			return Shape{}, err
		}
		if seen[axis] {
			return Shape{}, fmt.Errorf("%w: repeated axis %d in permutation %v", ErrInvalidAxis, p, perm)
		}
		seen[axis] = true
		out.dims[i] = s.dims[axis]
		out.strides[i] = s.strides[axis]
	}

	return out, nil
}

// Reshape returns a contiguous shape with new extents over the same elements.
// A single -1 extent is inferred. The receiver must be contiguous.
func (s Shape) Reshape(dims ...int) (Shape, error) {
	if !s.IsContiguous() {
		return Shape{}, fmt.Errorf("%w: reshape of non-contiguous view %v", ErrShapeMismatch, s)
	}

	dims, err := inferShape(s.Size(), dims)
	if err != nil {
		return Shape{}, err
	}

	out := NewShape(dims...)
	out.offset = s.offset
	return out, nil
}

// inferShape resolves a -1 extent against the element count n
func inferShape(n int, dims []int) ([]int, error) {
	dims = slices.Clone(dims)
	infer, known := -1, 1
	for i, d := range dims {
		switch {
		case d == -1 && infer < 0:
			infer = i
		case d < 0:
			return nil, fmt.Errorf("%w: invalid extent %d in %v", ErrShapeMismatch, d, dims)
		default:
			known *= d
		}
	}

	if infer >= 0 {
		if known == 0 || n%known != 0 {
			return nil, fmt.Errorf("%w: cannot infer %v from %d elements", ErrShapeMismatch, dims, n)
		}
		dims[infer] = n / known
		known = n
	}

	if known != n {
		return nil, fmt.Errorf("%w: %v does not hold %d elements", ErrShapeMismatch, dims, n)
	}

	return dims, nil
}
