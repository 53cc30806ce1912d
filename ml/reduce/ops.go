// ops.go - oeffentliche Reduktions-Funktionen
//
// Jede Funktion gibt es in zwei Formen:
// - Array-Form: Op(a, opts...) (*ml.Array, error)
// - Elementwise-Form: volle Reduktion, Ergebnis als nackter Go-Wert
package reduce

import (
	"fmt"
	"slices"

	"github.com/7blacky7/ndreduce/ml"
)

// AMin returns the minimum of a, over the whole array or along WithAxis.
func AMin(a *ml.Array, opts ...Option) (*ml.Array, error) {
	return opAMin.Reduce(a, opts...)
}

// AMax returns the maximum of a.
func AMax(a *ml.Array, opts ...Option) (*ml.Array, error) {
	return opAMax.Reduce(a, opts...)
}

// ArgMin returns the position of the minimum. Ties resolve to the earliest
// position. The result is int64 unless WithDType names another integer type.
func ArgMin(a *ml.Array, opts ...Option) (*ml.Array, error) {
	return opArgMin.Reduce(a, opts...)
}

// ArgMax returns the position of the maximum, earliest on ties.
func ArgMax(a *ml.Array, opts ...Option) (*ml.Array, error) {
	return opArgMax.Reduce(a, opts...)
}

// Sum adds the elements of a in AccumulatingType.
func Sum(a *ml.Array, opts ...Option) (*ml.Array, error) {
	return opSum.Reduce(a, opts...)
}

// Prod multiplies the elements of a in AccumulatingType.
func Prod(a *ml.Array, opts ...Option) (*ml.Array, error) {
	return opProd.Reduce(a, opts...)
}

// CumSum returns running sums. Along an axis the result has the shape of a;
// without one it is flattened to one dimension. WithKeepDims has no effect.
func CumSum(a *ml.Array, opts ...Option) (*ml.Array, error) {
	return opCumSum.Reduce(a, opts...)
}

// Mean returns the arithmetic mean, summed in ComputingType and divided once.
func Mean(a *ml.Array, opts ...Option) (*ml.Array, error) {
	return opMean.Reduce(a, opts...)
}

// Var returns the variance. See WithDDof.
func Var(a *ml.Array, opts ...Option) (*ml.Array, error) {
	return opVar.Reduce(a, opts...)
}

// Std returns the standard deviation. See WithDDof.
func Std(a *ml.Array, opts ...Option) (*ml.Array, error) {
	return opStd.Reduce(a, opts...)
}

// elementwise runs a full reduction of a and reads back the single result.
// An empty a yields op's identity, or an error when it has none.
func elementwise[T ml.Number](op *Operator, a *ml.Array, opts ...Option) (T, error) {
	if a.Shape().IsEmpty() {
		if v, ok := Identity[T](op.Kind); ok {
			return v, nil
		}
		return 0, fmt.Errorf("%s: %w: no identity for empty array %v", op.Name, ml.ErrShapeMismatch, a.Shape())
	}

	r, err := op.Reduce(a, append(slices.Clip(opts), withoutAxis())...)
	if err != nil {
		return 0, err
	}
	return ml.Values[T](r)[0], nil
}

func withoutAxis() Option {
	return func(o *options) {
		o.hasAxis = false
		o.keepDims = false
	}
}

// AMinElementwise returns the minimum of every element of a as a T.
func AMinElementwise[T ml.Number](a *ml.Array, opts ...Option) (T, error) {
	return elementwise[T](opAMin, a, opts...)
}

// AMaxElementwise returns the maximum of every element of a as a T.
func AMaxElementwise[T ml.Number](a *ml.Array, opts ...Option) (T, error) {
	return elementwise[T](opAMax, a, opts...)
}

// ArgMinElementwise returns the flat row-major position of the first minimum.
func ArgMinElementwise(a *ml.Array) (int, error) {
	i, err := elementwise[int64](opArgMin, a)
	return int(i), err
}

// ArgMaxElementwise returns the flat row-major position of the first maximum.
func ArgMaxElementwise(a *ml.Array) (int, error) {
	i, err := elementwise[int64](opArgMax, a)
	return int(i), err
}

// SumElementwise returns the sum of every element of a as a T.
func SumElementwise[T ml.Number](a *ml.Array, opts ...Option) (T, error) {
	return elementwise[T](opSum, a, opts...)
}

// ProdElementwise returns the product of every element of a as a T.
func ProdElementwise[T ml.Number](a *ml.Array, opts ...Option) (T, error) {
	return elementwise[T](opProd, a, opts...)
}

// MeanElementwise returns the mean of every element of a as a T.
func MeanElementwise[T ml.Number](a *ml.Array, opts ...Option) (T, error) {
	return elementwise[T](opMean, a, opts...)
}

// VarElementwise returns the variance of every element of a as a T.
func VarElementwise[T ml.Number](a *ml.Array, opts ...Option) (T, error) {
	return elementwise[T](opVar, a, opts...)
}

// StdElementwise returns the standard deviation of every element of a as a T.
func StdElementwise[T ml.Number](a *ml.Array, opts ...Option) (T, error) {
	return elementwise[T](opStd, a, opts...)
}

// CumSumElementwise returns the running sums over every element of a in
// row-major order.
func CumSumElementwise[T ml.Number](a *ml.Array, opts ...Option) ([]T, error) {
	if a.Shape().IsEmpty() {
		return []T{}, nil
	}

	r, err := opCumSum.Reduce(a, append(slices.Clip(opts), withoutAxis())...)
	if err != nil {
		return nil, err
	}
	return ml.Values[T](r), nil
}
