// cast.go - Konvertierungs-Schicht zwischen Element-Typen
//
// Enthaelt:
// - Number: Constraint fuer alle Go-Typen in denen gerechnet wird
// - BFloat16: bfloat16-Element (Bits) mit Konvertierung ueber go-bfloat16
// - Loader/Storer: typisierte Lese-/Schreibzugriffe auf einen Buffer
// - Convert: numerischer Cast zwischen zwei Go-Typen
//
// Float->Integer Konvertierungen schneiden Richtung Null ab (Go-Semantik).
package ml

import (
	bfloat16 "github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// Number is the set of Go types reductions compute in.
type Number interface {
	constraints.Integer | constraints.Float
}

// Element is the set of Go types an array can be built from.
type Element interface {
	bool | int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float16.Float16 | BFloat16 | float32 | float64
}

// BFloat16 holds the bits of a bfloat16 value.
type BFloat16 uint16

// BFloat16FromFloat32 rounds f to bfloat16.
func BFloat16FromFloat32(f float32) BFloat16 {
	b := bfloat16.EncodeFloat32([]float32{f})
	return BFloat16(uint16(b[0]) | uint16(b[1])<<8)
}

// Float32 widens the value to float32 exactly.
func (b BFloat16) Float32() float32 {
	return bfloat16.DecodeFloat32([]byte{byte(b), byte(b >> 8)})[0]
}

// Convert casts v to To.
func Convert[From, To Number](v From) To {
	return To(v)
}

// Loader returns a function reading buffer index i converted to T.
func Loader[T Number](b *Buffer) func(i int) T {
	switch s := b.data.(type) {
	case []bool:
		return func(i int) T {
			if s[i] {
				return 1
			}
			return 0
		}
	case []uint8:
		return func(i int) T { return T(s[i]) }
	case []uint16:
		return func(i int) T { return T(s[i]) }
	case []uint32:
		return func(i int) T { return T(s[i]) }
	case []uint64:
		return func(i int) T { return T(s[i]) }
	case []int8:
		return func(i int) T { return T(s[i]) }
	case []int16:
		return func(i int) T { return T(s[i]) }
	case []int32:
		return func(i int) T { return T(s[i]) }
	case []int64:
		return func(i int) T { return T(s[i]) }
	case []float16.Float16:
		return func(i int) T { return T(s[i].Float32()) }
	case []float32:
		return func(i int) T { return T(s[i]) }
	case []float64:
		return func(i int) T { return T(s[i]) }
	case []BFloat16:
		return func(i int) T { return T(s[i].Float32()) }
	default:
		panic("ml: loader for unknown buffer type")
	}
}

// Storer returns a function writing v, converted to the buffer's type, at
// buffer index i.
func Storer[T Number](b *Buffer) func(i int, v T) {
	switch s := b.data.(type) {
	case []bool:
		return func(i int, v T) { s[i] = v != 0 }
	case []uint8:
		return func(i int, v T) { s[i] = uint8(v) }
	case []uint16:
		return func(i int, v T) { s[i] = uint16(v) }
	case []uint32:
		return func(i int, v T) { s[i] = uint32(v) }
	case []uint64:
		return func(i int, v T) { s[i] = uint64(v) }
	case []int8:
		return func(i int, v T) { s[i] = int8(v) }
	case []int16:
		return func(i int, v T) { s[i] = int16(v) }
	case []int32:
		return func(i int, v T) { s[i] = int32(v) }
	case []int64:
		return func(i int, v T) { s[i] = int64(v) }
	case []float16.Float16:
		return func(i int, v T) { s[i] = float16.Fromfloat32(float32(v)) }
	case []float32:
		return func(i int, v T) { s[i] = float32(v) }
	case []float64:
		return func(i int, v T) { s[i] = float64(v) }
	case []BFloat16:
		return func(i int, v T) { s[i] = BFloat16FromFloat32(float32(v)) }
	default:
		panic("ml: storer for unknown buffer type")
	}
}

// copyInto copies every element of the src view into the contiguous dst
// buffer, converting through T.
func copyInto[T Number](dst *Buffer, src *Array) {
	load, store := Loader[T](src.buf), Storer[T](dst)
	for i, at := range src.shape.Indices() {
		store(i, load(at))
	}
}

// castCopy copies src into dst picking an intermediate Go type wide enough
// for both element types.
func castCopy(dst *Buffer, src *Array) {
	switch from, to := src.DType(), dst.dtype; {
	case from == DTypeFloat64 || to == DTypeFloat64:
		copyInto[float64](dst, src)
	case from.IsFloat() || to.IsFloat():
		// float16/bfloat16/float32 are exact in float32 only when no side is
		// a wide integer
		if from.Size() > 2 && from.IsInteger() || to.Size() > 2 && to.IsInteger() {
			copyInto[float64](dst, src)
		} else {
			copyInto[float32](dst, src)
		}
	case from == DTypeUint64:
		copyInto[uint64](dst, src)
	default:
		copyInto[int64](dst, src)
	}
}
