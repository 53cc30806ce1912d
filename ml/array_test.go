package ml

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/x448/float16"
)

func TestFromSlice(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if a.DType() != DTypeInt64 {
		t.Errorf("dtype = %v, want int64", a.DType())
	}
	if diff := cmp.Diff([]int{2, 3}, a.Dims()); diff != "" {
		t.Errorf("dims (-want +got):\n%s", diff)
	}
	if got := Item[int64](a, 1, 2); got != 6 {
		t.Errorf("a[1,2] = %d, want 6", got)
	}

	if _, err := FromSlice([]float32{1, 2, 3}, 2, 2); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestFromSliceCopies(t *testing.T) {
	data := []uint16{1, 2, 3}
	a, _ := FromSlice(data)
	data[0] = 99

	if got := Values[uint16](a)[0]; got != 1 {
		t.Errorf("array observed caller mutation: %d", got)
	}
}

func TestNewAndFull(t *testing.T) {
	a, err := New(DTypeInt8, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int64{0, 0, 0, 0}, a.Ints()); diff != "" {
		t.Errorf("zeros (-want +got):\n%s", diff)
	}

	if _, err := New(DTypeFloat32, 2, -1); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
	if _, err := New(DType(42), 2); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}

	f, err := Full(DTypeFloat16, 0.5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0.5, 0.5, 0.5}, f.Floats()); diff != "" {
		t.Errorf("full (-want +got):\n%s", diff)
	}
}

func TestViewsShareBuffer(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 1, 3)

	sq, err := a.Squeeze(1)
	if err != nil {
		t.Fatal(err)
	}
	ex, err := sq.ExpandDims(-1)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := a.Transpose()
	if err != nil {
		t.Fatal(err)
	}

	for name, v := range map[string]*Array{"squeeze": sq, "expand": ex, "transpose": tr, "alias": a.Alias()} {
		if !v.SharesBuffer(a) {
			t.Errorf("%s does not share the buffer", name)
		}
	}

	if diff := cmp.Diff([]int{2, 3, 1}, ex.Dims()); diff != "" {
		t.Errorf("expand dims (-want +got):\n%s", diff)
	}

	Storer[float64](a.Buffer())(4, -5)
	if got := Item[float64](sq, 1, 1); got != -5 {
		t.Errorf("squeezed view = %v, want -5", got)
	}

	if _, err := a.Squeeze(0); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch squeezing extent 2, got %v", err)
	}
}

func TestReshape(t *testing.T) {
	a, _ := FromSlice([]int32{1, 2, 3, 4, 5, 6}, 2, 3)

	r, err := a.Reshape(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !r.SharesBuffer(a) {
		t.Error("reshape of a contiguous array should be a view")
	}

	tr, _ := a.Transpose()
	r, err = tr.Reshape(-1)
	if err != nil {
		t.Fatal(err)
	}
	if r.SharesBuffer(a) {
		t.Error("reshape of a strided view should copy")
	}
	if diff := cmp.Diff([]int64{1, 4, 2, 5, 3, 6}, r.Ints()); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
}

func TestAsType(t *testing.T) {
	a, _ := FromSlice([]float64{-1.75, 0, 2.5, 100})

	cases := []struct {
		dtype DType
		want  []float64
	}{
		{DTypeInt32, []float64{-1, 0, 2, 100}},
		{DTypeInt8, []float64{-1, 0, 2, 100}},
		{DTypeBool, []float64{1, 0, 1, 1}},
		{DTypeFloat16, []float64{-1.75, 0, 2.5, 100}},
		{DTypeBfloat16, []float64{-1.75, 0, 2.5, 100}},
	}

	for _, tt := range cases {
		t.Run(tt.dtype.String(), func(t *testing.T) {
			c, err := a.AsType(tt.dtype)
			if err != nil {
				t.Fatal(err)
			}
			if c.DType() != tt.dtype {
				t.Errorf("dtype = %v, want %v", c.DType(), tt.dtype)
			}
			if diff := cmp.Diff(tt.want, c.Floats()); diff != "" {
				t.Errorf("values (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHalfElements(t *testing.T) {
	a, _ := FromSlice([]float16.Float16{float16.Fromfloat32(1.5), float16.Fromfloat32(-2)})
	if diff := cmp.Diff([]float32{1.5, -2}, Values[float32](a)); diff != "" {
		t.Errorf("float16 (-want +got):\n%s", diff)
	}

	b, _ := FromSlice([]BFloat16{BFloat16FromFloat32(0.25), BFloat16FromFloat32(-3)})
	if diff := cmp.Diff([]float32{0.25, -3}, Values[float32](b)); diff != "" {
		t.Errorf("bfloat16 (-want +got):\n%s", diff)
	}

	if got := BFloat16FromFloat32(1.5).Float32(); got != 1.5 {
		t.Errorf("bfloat16 round trip = %v, want 1.5", got)
	}
}

func TestScalar(t *testing.T) {
	s := Scalar(uint32(9))
	if s.Rank() != 0 || s.Size() != 1 {
		t.Errorf("rank %d size %d, want rank 0 size 1", s.Rank(), s.Size())
	}
	if got := Item[uint32](s); got != 9 {
		t.Errorf("value = %d, want 9", got)
	}
}
