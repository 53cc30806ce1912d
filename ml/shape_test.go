package ml

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewShape(t *testing.T) {
	cases := []struct {
		dims    []int
		strides []int
		size    int
		str     string
	}{
		{nil, []int{}, 1, "()"},
		{[]int{3}, []int{1}, 3, "(3,)"},
		{[]int{2, 3, 4}, []int{12, 4, 1}, 24, "(2, 3, 4)"},
		{[]int{2, 0, 4}, []int{4, 4, 1}, 0, "(2, 0, 4)"},
	}

	for _, tt := range cases {
		s := NewShape(tt.dims...)
		if diff := cmp.Diff(tt.strides, s.Strides()); diff != "" {
			t.Errorf("%v strides (-want +got):\n%s", tt.dims, diff)
		}
		if s.Size() != tt.size {
			t.Errorf("%v size = %d, want %d", tt.dims, s.Size(), tt.size)
		}
		if s.String() != tt.str {
			t.Errorf("%v string = %q, want %q", tt.dims, s.String(), tt.str)
		}
	}
}

func TestShapePredicates(t *testing.T) {
	if !NewShape().IsScalar() {
		t.Error("rank 0 should be scalar")
	}
	if !NewShape(1).IsDegenerate() || NewShape(1, 1).IsDegenerate() || NewShape(2).IsDegenerate() {
		t.Error("only rank 1 with a single element is degenerate")
	}
	if !NewShape(3, 0).IsEmpty() || NewShape().IsEmpty() {
		t.Error("empty means a zero extent")
	}
}

func TestShapeSlice(t *testing.T) {
	s := NewShape(4, 6)

	cases := []struct {
		name    string
		sl      []Slice
		dims    []int
		strides []int
		offset  int
	}{
		{"row", []Slice{Index(2)}, []int{6}, []int{1}, 12},
		{"column", []Slice{All(), Index(-1)}, []int{4}, []int{6}, 5},
		{"range", []Slice{Range(1, 3), Range(2, 100)}, []int{2, 4}, []int{6, 1}, 8},
		{"step", []Slice{RangeStep(0, 4, 2), RangeStep(1, 6, 2)}, []int{2, 3}, []int{12, 2}, 1},
		{"negative start", []Slice{Range(-2, 4)}, []int{2, 6}, []int{6, 1}, 12},
		{"empty range", []Slice{Range(3, 1)}, []int{0, 6}, []int{6, 1}, 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Slice(tt.sl...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.dims, got.Dims()); diff != "" {
				t.Errorf("dims (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.strides, got.Strides()); diff != "" {
				t.Errorf("strides (-want +got):\n%s", diff)
			}
			if got.Offset() != tt.offset {
				t.Errorf("offset = %d, want %d", got.Offset(), tt.offset)
			}
		})
	}
}

func TestShapeSliceErrors(t *testing.T) {
	s := NewShape(2, 3)

	for _, sl := range [][]Slice{
		{Index(2)},
		{All(), Index(-4)},
		{RangeStep(0, 2, 0)},
		{All(), All(), All()},
	} {
		if _, err := s.Slice(sl...); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("%v: expected ErrShapeMismatch, got %v", sl, err)
		}
	}
}

func TestShapeTranspose(t *testing.T) {
	s, err := NewShape(2, 3, 4).Transpose()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{4, 3, 2}, s.Dims()); diff != "" {
		t.Errorf("dims (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 4, 12}, s.Strides()); diff != "" {
		t.Errorf("strides (-want +got):\n%s", diff)
	}
	if s.IsContiguous() {
		t.Error("transposed shape reported contiguous")
	}

	if _, err := NewShape(2, 3).Transpose(0, 0); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("expected ErrInvalidAxis for repeated axis, got %v", err)
	}
	if _, err := NewShape(2, 3).Transpose(0); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch for short permutation, got %v", err)
	}
}

func TestShapeReshape(t *testing.T) {
	s, err := NewShape(2, 3, 4).Reshape(6, -1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{6, 4}, s.Dims()); diff != "" {
		t.Errorf("dims (-want +got):\n%s", diff)
	}

	if _, err := NewShape(2, 3).Reshape(4, -1); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}

	tr, _ := NewShape(2, 3).Transpose()
	if _, err := tr.Reshape(6); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch for strided view, got %v", err)
	}
}

func TestShapeAxisRemovedAndUnitDim(t *testing.T) {
	s := NewShape(2, 3, 4)

	r := s.AxisRemoved(1)
	if diff := cmp.Diff([]int{2, 4}, r.Dims()); diff != "" {
		t.Errorf("dims (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{12, 1}, r.Strides()); diff != "" {
		t.Errorf("strides (-want +got):\n%s", diff)
	}

	u := r.WithUnitDim(1)
	if diff := cmp.Diff([]int{2, 1, 4}, u.Dims()); diff != "" {
		t.Errorf("dims (-want +got):\n%s", diff)
	}

	u = NewShape(2, 3).WithUnitDim(2)
	if diff := cmp.Diff([]int{2, 3, 1}, u.Dims()); diff != "" {
		t.Errorf("dims (-want +got):\n%s", diff)
	}
}

func TestNormalizeAxis(t *testing.T) {
	for _, tt := range []struct{ axis, rank, want int }{
		{0, 3, 0}, {2, 3, 2}, {-1, 3, 2}, {-3, 3, 0},
	} {
		got, err := NormalizeAxis(tt.axis, tt.rank)
		if err != nil || got != tt.want {
			t.Errorf("NormalizeAxis(%d, %d) = %d, %v; want %d", tt.axis, tt.rank, got, err, tt.want)
		}
	}

	for _, axis := range []int{3, -4} {
		if _, err := NormalizeAxis(axis, 3); !errors.Is(err, ErrInvalidAxis) {
			t.Errorf("NormalizeAxis(%d, 3): expected ErrInvalidAxis, got %v", axis, err)
		}
	}
}

func TestCursor(t *testing.T) {
	s, _ := NewShape(2, 3).Transpose()

	var got []int
	for _, at := range s.Indices() {
		got = append(got, at)
	}
	if diff := cmp.Diff([]int{0, 3, 1, 4, 2, 5}, got); diff != "" {
		t.Errorf("indices (-want +got):\n%s", diff)
	}

	c := NewCursor(NewShape())
	if c.Len() != 1 || c.Next() != 0 || c.HasNext() {
		t.Error("scalar cursor should yield exactly index 0")
	}
}
