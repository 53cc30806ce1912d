// dense.go - Austausch mit gorgonia-artigen Dense-Tensoren
// FromDense/ToDense kopieren Daten zwischen *tensor.Dense und Array.
package ml

import (
	"fmt"
	"reflect"

	"github.com/pdevine/tensor"
)

// FromDense copies a dense tensor into a new contiguous Array. Views are
// materialized first.
func FromDense(t *tensor.Dense) (*Array, error) {
	if t.IsMaterializable() {
		m, ok := t.Materialize().(*tensor.Dense)
		if !ok {
			return nil, fmt.Errorf("%w: cannot materialize %v", ErrUnsupportedType, t.Dtype())
		}
		t = m
	}

	if t.Shape().IsScalar() {
		return scalarFromDense(t.Data())
	}

	dims := []int(t.Shape())
	switch data := t.Data().(type) {
	case []bool:
		return FromSlice(data, dims...)
	case []uint8:
		return FromSlice(data, dims...)
	case []uint16:
		return FromSlice(data, dims...)
	case []uint32:
		return FromSlice(data, dims...)
	case []uint64:
		return FromSlice(data, dims...)
	case []uint:
		return FromSlice(data, dims...)
	case []int8:
		return FromSlice(data, dims...)
	case []int16:
		return FromSlice(data, dims...)
	case []int32:
		return FromSlice(data, dims...)
	case []int64:
		return FromSlice(data, dims...)
	case []int:
		return FromSlice(data, dims...)
	case []float32:
		return FromSlice(data, dims...)
	case []float64:
		return FromSlice(data, dims...)
	default:
		return nil, fmt.Errorf("%w: dense dtype %v", ErrUnsupportedType, t.Dtype())
	}
}

func scalarFromDense(v any) (*Array, error) {
	switch v := v.(type) {
	case bool:
		return Scalar(v), nil
	case uint8:
		return Scalar(v), nil
	case uint16:
		return Scalar(v), nil
	case uint32:
		return Scalar(v), nil
	case uint64:
		return Scalar(v), nil
	case uint:
		return Scalar(v), nil
	case int8:
		return Scalar(v), nil
	case int16:
		return Scalar(v), nil
	case int32:
		return Scalar(v), nil
	case int64:
		return Scalar(v), nil
	case int:
		return Scalar(v), nil
	case float32:
		return Scalar(v), nil
	case float64:
		return Scalar(v), nil
	default:
		return nil, fmt.Errorf("%w: dense scalar %T", ErrUnsupportedType, v)
	}
}

// ToDense copies a into a new dense tensor. Half precision types are widened
// to float32 since the dense package has no equivalent.
func ToDense(a *Array) (*tensor.Dense, error) {
	if a.shape.IsEmpty() {
		return nil, fmt.Errorf("%w: dense tensors can't be empty, got %v", ErrShapeMismatch, a.shape)
	}

	var backing any
	switch a.DType() {
	case DTypeBool:
		u8s := Values[uint8](a)
		bs := make([]bool, len(u8s))
		for i, u := range u8s {
			bs[i] = u != 0
		}
		backing = bs
	case DTypeUint8:
		backing = Values[uint8](a)
	case DTypeUint16:
		backing = Values[uint16](a)
	case DTypeUint32:
		backing = Values[uint32](a)
	case DTypeUint64:
		backing = Values[uint64](a)
	case DTypeInt8:
		backing = Values[int8](a)
	case DTypeInt16:
		backing = Values[int16](a)
	case DTypeInt32:
		backing = Values[int32](a)
	case DTypeInt64:
		backing = Values[int64](a)
	case DTypeFloat16, DTypeFloat32, DTypeBfloat16:
		backing = Values[float32](a)
	case DTypeFloat64:
		backing = Values[float64](a)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, a.DType())
	}

	if a.shape.IsScalar() {
		return tensor.New(tensor.FromScalar(reflect.ValueOf(backing).Index(0).Interface())), nil
	}

	return tensor.New(tensor.WithShape(a.Dims()...), tensor.WithBacking(backing)), nil
}
