package ml

import (
	"errors"
	"testing"
)

func TestParseDType(t *testing.T) {
	cases := map[string]DType{
		"bool":     DTypeBool,
		"u8":       DTypeUint8,
		"byte":     DTypeUint8,
		"int16":    DTypeInt16,
		" I64 ":    DTypeInt64,
		"half":     DTypeFloat16,
		"f32":      DTypeFloat32,
		"double":   DTypeFloat64,
		"bfloat16": DTypeBfloat16,
	}

	for s, want := range cases {
		got, err := ParseDType(s)
		if err != nil || got != want {
			t.Errorf("ParseDType(%q) = %v, %v; want %v", s, got, err, want)
		}
	}

	if _, err := ParseDType("complex64"); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestDTypeRoundTrip(t *testing.T) {
	for _, dt := range DTypes {
		got, err := ParseDType(dt.String())
		if err != nil || got != dt {
			t.Errorf("ParseDType(%v.String()) = %v, %v", dt, got, err)
		}
		if dt.Size() == 0 {
			t.Errorf("%v has no size", dt)
		}
	}

	if DType(99).Valid() || DType(99).String() != "DType(99)" {
		t.Error("unknown dtype should be invalid")
	}
}

func TestDTypePredicates(t *testing.T) {
	for _, tt := range []struct {
		dt                     DType
		float, integer, signed bool
	}{
		{DTypeBool, false, false, false},
		{DTypeUint32, false, true, false},
		{DTypeInt8, false, true, true},
		{DTypeBfloat16, true, false, true},
	} {
		if tt.dt.IsFloat() != tt.float || tt.dt.IsInteger() != tt.integer || tt.dt.IsSigned() != tt.signed {
			t.Errorf("%v: float=%t integer=%t signed=%t", tt.dt, tt.dt.IsFloat(), tt.dt.IsInteger(), tt.dt.IsSigned())
		}
	}
}
