// array.go - Array-View ueber einem Buffer
//
// Hauptfunktionen:
// - New/FromSlice/Scalar: Arrays erstellen
// - Alias/Slice/Squeeze/ExpandDims/Transpose/Reshape: Views ohne Datenkopie
// - Clone/AsType: zusammenhaengende Kopien
// - Values/Floats/Ints: Daten in Zeilen-Reihenfolge auslesen
//
// Views teilen sich den Buffer: Schreibzugriffe ueber eine View sind ueber
// alle anderen Views desselben Buffers sichtbar.
package ml

import (
	"fmt"
	"slices"

	"github.com/x448/float16"
)

// Array is a typed N-dimensional view onto a Buffer.
type Array struct {
	shape Shape
	buf   *Buffer
}

// New allocates a zeroed contiguous array.
func New(dtype DType, dims ...int) (*Array, error) {
	for _, d := range dims {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative extent in %v", ErrShapeMismatch, dims)
		}
	}

	shape := NewShape(dims...)
	buf, err := NewBuffer(dtype, shape.Size())
	if err != nil {
		return nil, err
	}

	return &Array{shape: shape, buf: buf}, nil
}

// FromSlice copies data into a new contiguous array. With no dims the result
// is rank 1. int and uint are stored as int64 and uint64.
func FromSlice[T Element](data []T, dims ...int) (*Array, error) {
	if len(dims) == 0 {
		dims = []int{len(data)}
	}

	shape := NewShape(dims...)
	if shape.Size() != len(data) {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrShapeMismatch, len(data), shape)
	}

	var buf *Buffer
	switch s := any(data).(type) {
	case []bool:
		buf = &Buffer{dtype: DTypeBool, data: slices.Clone(s)}
	case []uint8:
		buf = &Buffer{dtype: DTypeUint8, data: slices.Clone(s)}
	case []uint16:
		buf = &Buffer{dtype: DTypeUint16, data: slices.Clone(s)}
	case []uint32:
		buf = &Buffer{dtype: DTypeUint32, data: slices.Clone(s)}
	case []uint64:
		buf = &Buffer{dtype: DTypeUint64, data: slices.Clone(s)}
	case []uint:
		buf = &Buffer{dtype: DTypeUint64, data: widen[uint, uint64](s)}
	case []int8:
		buf = &Buffer{dtype: DTypeInt8, data: slices.Clone(s)}
	case []int16:
		buf = &Buffer{dtype: DTypeInt16, data: slices.Clone(s)}
	case []int32:
		buf = &Buffer{dtype: DTypeInt32, data: slices.Clone(s)}
	case []int64:
		buf = &Buffer{dtype: DTypeInt64, data: slices.Clone(s)}
	case []int:
		buf = &Buffer{dtype: DTypeInt64, data: widen[int, int64](s)}
	case []float16.Float16:
		buf = &Buffer{dtype: DTypeFloat16, data: slices.Clone(s)}
	case []float32:
		buf = &Buffer{dtype: DTypeFloat32, data: slices.Clone(s)}
	case []float64:
		buf = &Buffer{dtype: DTypeFloat64, data: slices.Clone(s)}
	case []BFloat16:
		buf = &Buffer{dtype: DTypeBfloat16, data: slices.Clone(s)}
	}

	return &Array{shape: shape, buf: buf}, nil
}

func widen[From, To Number](s []From) []To {
	out := make([]To, len(s))
	for i, v := range s {
		out[i] = To(v)
	}
	return out
}

// Scalar returns a rank-0 array holding v.
func Scalar[T Element](v T) *Array {
	a, _ := FromSlice([]T{v})
	a.shape = NewShape()
	return a
}

// Full returns a contiguous array of the given shape with every element set to v.
func Full[T Number](dtype DType, v T, dims ...int) (*Array, error) {
	a, err := New(dtype, dims...)
	if err != nil {
		return nil, err
	}

	store := Storer[T](a.buf)
	for i := range a.shape.Size() {
		store(i, v)
	}
	return a, nil
}

// DType returns the element type.
func (a *Array) DType() DType {
	return a.buf.dtype
}

// Shape returns the view's shape descriptor.
func (a *Array) Shape() Shape {
	return a.shape
}

// Dims returns a copy of the extents.
func (a *Array) Dims() []int {
	return a.shape.Dims()
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return a.shape.Rank()
}

// Dim returns the extent of axis n.
func (a *Array) Dim(n int) int {
	return a.shape.Dim(n)
}

// Size returns the number of elements in the view.
func (a *Array) Size() int {
	return a.shape.Size()
}

// Buffer returns the storage behind the view.
func (a *Array) Buffer() *Buffer {
	return a.buf
}

// SharesBuffer reports whether a and b are views of the same storage.
func (a *Array) SharesBuffer(b *Array) bool {
	return a.buf == b.buf
}

// WithShape returns a view of the same buffer using shape s. The caller is
// responsible for s addressing valid buffer indices.
func (a *Array) WithShape(s Shape) *Array {
	return &Array{shape: s, buf: a.buf}
}

// Alias returns a new view with the same shape over the same buffer.
func (a *Array) Alias() *Array {
	return a.WithShape(a.shape)
}

// Slice returns the sub-view selected by sl.
func (a *Array) Slice(sl ...Slice) (*Array, error) {
	s, err := a.shape.Slice(sl...)
	if err != nil {
		return nil, err
	}
	return a.WithShape(s), nil
}

// Squeeze removes axis, which must have extent 1, without copying.
func (a *Array) Squeeze(axis int) (*Array, error) {
	axis, err := NormalizeAxis(axis, a.Rank())
	if err != nil {
		return nil, err
	}

	if a.shape.dims[axis] != 1 {
		return nil, fmt.Errorf("%w: cannot squeeze axis %d of extent %d", ErrShapeMismatch, axis, a.shape.dims[axis])
	}

	return a.WithShape(a.shape.AxisRemoved(axis)), nil
}

// ExpandDims inserts an axis of extent 1 at position axis without copying.
// Negative positions count from rank+1.
func (a *Array) ExpandDims(axis int) (*Array, error) {
	axis, err := NormalizeAxis(axis, a.Rank()+1)
	if err != nil {
		return nil, err
	}

	return a.WithShape(a.shape.WithUnitDim(axis)), nil
}

// Transpose returns a strided view with permuted axes.
func (a *Array) Transpose(perm ...int) (*Array, error) {
	s, err := a.shape.Transpose(perm...)
	if err != nil {
		return nil, err
	}
	return a.WithShape(s), nil
}

// Reshape returns a view with new extents. Non-contiguous views are copied
// first, so the result only aliases a when a is contiguous.
func (a *Array) Reshape(dims ...int) (*Array, error) {
	src := a
	if !a.shape.IsContiguous() {
		src = a.Clone()
	}

	s, err := src.shape.Reshape(dims...)
	if err != nil {
		return nil, err
	}
	return src.WithShape(s), nil
}

// Clone returns a contiguous copy.
func (a *Array) Clone() *Array {
	c, _ := a.AsType(a.DType())
	return c
}

// AsType returns a contiguous copy converted to dtype.
func (a *Array) AsType(dtype DType) (*Array, error) {
	out, err := New(dtype, a.shape.dims...)
	if err != nil {
		return nil, err
	}

	castCopy(out.buf, a)
	return out, nil
}

// Values returns the elements in row-major order converted to T.
func Values[T Number](a *Array) []T {
	load := Loader[T](a.buf)
	out := make([]T, a.Size())
	for i, at := range a.shape.Indices() {
		out[i] = load(at)
	}
	return out
}

// Item returns the element at the given coordinates converted to T.
func Item[T Number](a *Array, coords ...int) T {
	return Loader[T](a.buf)(a.shape.Index(coords...))
}

// Floats returns the elements as float64 in row-major order.
func (a *Array) Floats() []float64 {
	return Values[float64](a)
}

// Ints returns the elements as int64 in row-major order.
func (a *Array) Ints() []int64 {
	return Values[int64](a)
}

func (a *Array) String() string {
	return Dump(a)
}
