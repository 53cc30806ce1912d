package reduce

import "github.com/7blacky7/ndreduce/ml"

// Stream pulls the elements of a view one at a time, converted to T. It is
// single-pass.
type Stream[T ml.Number] struct {
	cursor *ml.Cursor
	load   func(int) T
}

// NewStream returns a stream over every element of a in row-major order.
func NewStream[T ml.Number](a *ml.Array) *Stream[T] {
	return newStream(ml.Loader[T](a.Buffer()), a.Shape())
}

// newStream reuses a loader across the many sub-views of one buffer.
func newStream[T ml.Number](load func(int) T, shape ml.Shape) *Stream[T] {
	return &Stream[T]{cursor: ml.NewCursor(shape), load: load}
}

// HasNext reports whether another element is available.
func (s *Stream[T]) HasNext() bool {
	return s.cursor.HasNext()
}

// Next returns the next element and advances.
func (s *Stream[T]) Next() T {
	return s.load(s.cursor.Next())
}

// Len returns the total number of elements the stream yields.
func (s *Stream[T]) Len() int {
	return s.cursor.Len()
}
