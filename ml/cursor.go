package ml

import "iter"

// Cursor walks the buffer indices of a view in row-major order. It is
// single-pass; create a new one to walk again.
type Cursor struct {
	shape  Shape
	coords []int
	pos    int
	n, i   int
}

// NewCursor positions a cursor on the first element of s.
func NewCursor(s Shape) *Cursor {
	return &Cursor{
		shape:  s,
		coords: make([]int, s.Rank()),
		pos:    s.offset,
		n:      s.Size(),
	}
}

// HasNext reports whether Next will return another index.
func (c *Cursor) HasNext() bool {
	return c.i < c.n
}

// Len returns the total number of indices the cursor yields.
func (c *Cursor) Len() int {
	return c.n
}

// Next returns the buffer index of the current element and advances.
func (c *Cursor) Next() int {
	at := c.pos
	c.i++
	if c.i < c.n {
		for axis := len(c.coords) - 1; axis >= 0; axis-- {
			c.coords[axis]++
			c.pos += c.shape.strides[axis]
			if c.coords[axis] < c.shape.dims[axis] {
				break
			}

			// carry
			c.pos -= c.coords[axis] * c.shape.strides[axis]
			c.coords[axis] = 0
		}
	}
	return at
}

// Indices yields (position, buffer index) pairs for every element of s.
func (s Shape) Indices() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		c := NewCursor(s)
		for i := 0; c.HasNext(); i++ {
			if !yield(i, c.Next()) {
				return
			}
		}
	}
}
