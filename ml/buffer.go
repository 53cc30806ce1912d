// buffer.go - Speicher-Schicht fuer Array-Daten
// Ein Buffer besitzt einen typisierten Go-Slice. Mehrere Arrays (Views)
// koennen denselben Buffer referenzieren; der Buffer selbst kennt keine Shape.
package ml

import (
	"fmt"

	"github.com/x448/float16"
)

// Buffer owns the flat element storage behind one or more array views.
type Buffer struct {
	dtype DType
	data  any
}

// NewBuffer allocates a zeroed buffer of n elements.
func NewBuffer(dtype DType, n int) (*Buffer, error) {
	var data any
	switch dtype {
	case DTypeBool:
		data = make([]bool, n)
	case DTypeUint8:
		data = make([]uint8, n)
	case DTypeUint16:
		data = make([]uint16, n)
	case DTypeUint32:
		data = make([]uint32, n)
	case DTypeUint64:
		data = make([]uint64, n)
	case DTypeInt8:
		data = make([]int8, n)
	case DTypeInt16:
		data = make([]int16, n)
	case DTypeInt32:
		data = make([]int32, n)
	case DTypeInt64:
		data = make([]int64, n)
	case DTypeFloat16:
		data = make([]float16.Float16, n)
	case DTypeFloat32:
		data = make([]float32, n)
	case DTypeFloat64:
		data = make([]float64, n)
	case DTypeBfloat16:
		data = make([]BFloat16, n)
	default:
		return nil, fmt.Errorf("allocate: %w: %v", ErrUnsupportedType, dtype)
	}

	return &Buffer{dtype: dtype, data: data}, nil
}

// DType returns the element type of the buffer.
func (b *Buffer) DType() DType {
	return b.dtype
}

// Len returns the number of elements in the buffer.
func (b *Buffer) Len() int {
	switch s := b.data.(type) {
	case []bool:
		return len(s)
	case []uint8:
		return len(s)
	case []uint16:
		return len(s)
	case []uint32:
		return len(s)
	case []uint64:
		return len(s)
	case []int8:
		return len(s)
	case []int16:
		return len(s)
	case []int32:
		return len(s)
	case []int64:
		return len(s)
	case []float16.Float16:
		return len(s)
	case []float32:
		return len(s)
	case []float64:
		return len(s)
	case []BFloat16:
		return len(s)
	default:
		return 0
	}
}

// Data returns the backing slice, e.g. []float32 for DTypeFloat32. Writes to
// it are visible through every view of the buffer.
func (b *Buffer) Data() any {
	return b.data
}
