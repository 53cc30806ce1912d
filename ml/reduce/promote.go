// promote.go - Typ-Promotions-Tabellen
//
// Enthaelt:
// - AccumulatingType: Standard-Ausgabetyp fuer Sum/CumSum/Prod
// - ComputingType: Rechentyp fuer Mean/Var/Std
// - OrderingType: Vergleichstyp fuer Min/Max/ArgMin/ArgMax
// - Identity: neutrales Element pro Operator
//
// Alle Funktionen sind rein und kennen jeden gueltigen ml.DType.
package reduce

import (
	"github.com/7blacky7/ndreduce/ml"
)

// AccumulatingType returns the type sums and products of src accumulate in.
// Integers widen to 64 bits keeping their signedness; half precision floats
// accumulate in float32.
func AccumulatingType(src ml.DType) ml.DType {
	switch src {
	case ml.DTypeBool, ml.DTypeInt8, ml.DTypeInt16, ml.DTypeInt32, ml.DTypeInt64:
		return ml.DTypeInt64
	case ml.DTypeUint8, ml.DTypeUint16, ml.DTypeUint32, ml.DTypeUint64:
		return ml.DTypeUint64
	case ml.DTypeFloat16, ml.DTypeBfloat16, ml.DTypeFloat32:
		return ml.DTypeFloat32
	default:
		return ml.DTypeFloat64
	}
}

// ComputingType returns the floating point type averages of src are computed in.
func ComputingType(src ml.DType) ml.DType {
	switch src {
	case ml.DTypeFloat16, ml.DTypeBfloat16, ml.DTypeFloat32:
		return ml.DTypeFloat32
	default:
		return ml.DTypeFloat64
	}
}

// OrderingType returns the type elements of src are compared in. Every value
// of src is exactly representable in it.
func OrderingType(src ml.DType) ml.DType {
	switch src {
	case ml.DTypeBool:
		return ml.DTypeUint8
	case ml.DTypeFloat16, ml.DTypeBfloat16:
		return ml.DTypeFloat32
	default:
		return src
	}
}

// widen raises a float32 accumulator to float64 when the result is float64.
func widen(acc, out ml.DType) ml.DType {
	if acc == ml.DTypeFloat32 && out == ml.DTypeFloat64 {
		return ml.DTypeFloat64
	}
	return acc
}

// Identity returns the starting value of op's accumulator. Ordering operators
// have none and seed from the first element; ok is false for them.
func Identity[T ml.Number](op Kind) (v T, ok bool) {
	switch op {
	case KindSum, KindCumSum, KindMean, KindVar, KindStd:
		return 0, true
	case KindProd:
		return 1, true
	default:
		return 0, false
	}
}
