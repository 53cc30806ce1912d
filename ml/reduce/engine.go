// engine.go - Reduktions-Engine
//
// Ablauf pro Aufruf (in dieser Reihenfolge):
//  0. Achse normalisieren und Typen aufloesen (Fehler vor jeder Allokation)
//  1. leere Shape: Eingabe unveraendert zurueck
//  2. Skalar bzw. (1,): Kopie des einzelnen Elements
//  3. keine Achse: volle Reduktion ueber einen Stream
//  4. Achse mit Ausdehnung 1: Squeeze ohne Datenbewegung
//  5. allgemeiner Fall: AxisWalker und OutputWalker im Gleichschritt
//
// Der Typ-Switch in dispatch ist die einzige Stelle, an der vom Laufzeit-DType
// auf einen Go-Typ gewechselt wird.
package reduce

import (
	"fmt"
	"log/slog"

	"github.com/7blacky7/ndreduce/envconfig"
	"github.com/7blacky7/ndreduce/logutil"
	"github.com/7blacky7/ndreduce/ml"
)

// Option configures a reduction.
type Option func(*options)

type options struct {
	axis     int
	hasAxis  bool
	keepDims bool
	dtype    ml.DType
	hasDType bool
	ddof     int
}

// WithAxis reduces along axis instead of over the whole array. Negative
// values count from the last axis.
func WithAxis(axis int) Option {
	return func(o *options) {
		o.axis = axis
		o.hasAxis = true
	}
}

// WithKeepDims keeps the reduced axis in the result with extent 1.
func WithKeepDims() Option {
	return func(o *options) {
		o.keepDims = true
	}
}

// WithDType sets the element type of the result.
func WithDType(dtype ml.DType) Option {
	return func(o *options) {
		o.dtype = dtype
		o.hasDType = true
	}
}

// WithDDof sets the delta degrees of freedom for Var and Std. The divisor is
// n - ddof.
func WithDDof(ddof int) Option {
	return func(o *options) {
		o.ddof = ddof
	}
}

// Operator is a named reduction.
type Operator struct {
	Name        string
	Kind        Kind
	Description string
}

// DefaultDType returns the result type of op for a source of type src when no
// type is requested.
func (op *Operator) DefaultDType(src ml.DType) ml.DType {
	out, _ := op.resolve(src, &options{})
	return out
}

// resolve returns the output type and the accumulator type.
func (op *Operator) resolve(src ml.DType, o *options) (out, acc ml.DType) {
	switch k := op.Kind; {
	case k.positional():
		out = ml.DTypeInt64
		if o.hasDType && o.dtype.IsInteger() {
			out = o.dtype
		}
	case o.hasDType:
		out = o.dtype
	case k.ordering():
		out = src
	case k == KindSum, k == KindProd, k == KindCumSum:
		out = AccumulatingType(src)
	default:
		out = ComputingType(src)
	}

	switch k := op.Kind; {
	case k.ordering():
		acc = OrderingType(src)
	case k == KindSum, k == KindProd, k == KindCumSum:
		acc = widen(AccumulatingType(src), out)
	default:
		acc = widen(ComputingType(src), out)
	}
	return out, acc
}

// Reduce applies op to a. Results of the fast paths may alias a; mutating one
// is visible through the other.
func (op *Operator) Reduce(a *ml.Array, opts ...Option) (*ml.Array, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	shape := a.Shape()
	axis := -1
	if o.hasAxis {
		n, err := ml.NormalizeAxis(o.axis, shape.Rank())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Name, err)
		}
		axis = n
	}

	if src := a.DType(); !src.Valid() || o.hasDType && !o.dtype.Valid() {
		to := src
		if o.hasDType {
			to = o.dtype
		}
		return nil, &ml.UnsupportedTypeError{Op: op.Name, From: src, To: to}
	}
	out, acc := op.resolve(a.DType(), &o)

	switch {
	case shape.IsEmpty():
		slog.Debug("reduce: empty input", "op", op.Name, "shape", shape)
		return a, nil
	case shape.IsScalar() || shape.IsDegenerate():
		slog.Debug("reduce: single element", "op", op.Name, "shape", shape)
		return op.single(a, out, acc, &o)
	case axis < 0:
		return op.full(a, out, acc, &o)
	case shape.Dim(axis) == 1:
		slog.Debug("reduce: squeezing unit axis", "op", op.Name, "shape", shape, "axis", axis)
		return op.squeeze(a, axis, out, acc, &o)
	default:
		return op.alongAxis(a, axis, out, acc, &o)
	}
}

// single handles arrays holding exactly one element.
func (op *Operator) single(a *ml.Array, out, acc ml.DType, o *options) (*ml.Array, error) {
	if op.Kind.statistic() {
		return op.full(a, out, acc, o)
	}

	var r *ml.Array
	var err error
	if op.Kind.positional() {
		r, err = ml.New(out, a.Dims()...)
	} else {
		r, err = a.AsType(out)
	}
	if err != nil {
		return nil, err
	}

	if op.Kind.scan() || o.keepDims {
		return r, nil
	}
	return r.Reshape()
}

// full reduces every element of a into one value (or, for scans, into a flat
// run of values).
func (op *Operator) full(a *ml.Array, out, acc ml.DType, o *options) (*ml.Array, error) {
	var dims []int
	switch {
	case op.Kind.scan():
		dims = []int{a.Size()}
	case o.keepDims:
		dims = make([]int, a.Rank())
		for i := range dims {
			dims[i] = 1
		}
	}

	r, err := ml.New(out, dims...)
	if err != nil {
		return nil, err
	}

	if err := dispatch(acc, &run{op: op, src: a, dst: r, axis: -1, ddof: o.ddof}); err != nil {
		return nil, err
	}
	return r, nil
}

// squeeze handles an axis of extent 1 without running a kernel.
func (op *Operator) squeeze(a *ml.Array, axis int, out, acc ml.DType, o *options) (*ml.Array, error) {
	keep := o.keepDims || op.Kind.scan()

	switch {
	case op.Kind.statistic():
		return op.alongAxis(a, axis, out, acc, o)
	case op.Kind.positional():
		dims := a.Shape().AxisRemoved(axis).Dims()
		if keep {
			dims = a.Dims()
		}
		return ml.New(out, dims...)
	}

	v := a.Alias()
	if !keep {
		var err error
		if v, err = a.Squeeze(axis); err != nil {
			return nil, err
		}
	}

	if out != a.DType() {
		return v.AsType(out)
	}
	return v, nil
}

// alongAxis is the general case: one kernel run per axis walker step.
func (op *Operator) alongAxis(a *ml.Array, axis int, out, acc ml.DType, o *options) (*ml.Array, error) {
	dims := a.Shape().AxisRemoved(axis).Dims()
	if op.Kind.scan() {
		dims = a.Dims()
	}

	r, err := ml.New(out, dims...)
	if err != nil {
		return nil, err
	}

	logutil.Trace("reduce: along axis", "op", op.Name, "shape", a.Shape(), "axis", axis, "out", out, "acc", acc)
	if err := dispatch(acc, &run{
		op:     op,
		src:    a,
		dst:    r,
		axis:   axis,
		ddof:   o.ddof,
		strict: envconfig.StrictWalkers(true),
	}); err != nil {
		return nil, err
	}

	if o.keepDims && !op.Kind.scan() {
		return r.ExpandDims(axis)
	}
	return r, nil
}

// run is one kernel application over src writing into dst. axis is -1 for a
// full reduction.
type run struct {
	op       *Operator
	src, dst *ml.Array
	axis     int
	ddof     int
	strict   bool
}

func dispatch(acc ml.DType, r *run) error {
	switch acc {
	case ml.DTypeUint8:
		return execute[uint8](r)
	case ml.DTypeUint16:
		return execute[uint16](r)
	case ml.DTypeUint32:
		return execute[uint32](r)
	case ml.DTypeUint64:
		return execute[uint64](r)
	case ml.DTypeInt8:
		return execute[int8](r)
	case ml.DTypeInt16:
		return execute[int16](r)
	case ml.DTypeInt32:
		return execute[int32](r)
	case ml.DTypeInt64:
		return execute[int64](r)
	case ml.DTypeFloat32:
		return execute[float32](r)
	case ml.DTypeFloat64:
		return execute[float64](r)
	default:
		return &ml.UnsupportedTypeError{Op: r.op.Name, From: r.src.DType(), To: r.dst.DType()}
	}
}

func execute[A ml.Number](r *run) error {
	kern := kernelFor[A](r.op.Kind, r.ddof)
	load := ml.Loader[A](r.src.Buffer())
	out := newSink[A](r.dst.Buffer())

	if r.axis < 0 {
		out.next = ml.NewCursor(r.dst.Shape()).Next
		kern(newStream(load, r.src.Shape()), out)
		return nil
	}

	scan := r.op.Kind.scan()
	reduced := r.dst.Shape()
	if scan {
		reduced = reduced.AxisRemoved(r.axis)
	}

	aw := NewAxisWalker(r.src.Shape(), r.axis)
	ow := NewOutputWalker(reduced)
	if !scan {
		out.next = ow.Index
	}

	steps := 0
	for slices := aw.Slices(); ; steps++ {
		view, err := r.src.Shape().Slice(slices...)
		if err != nil {
			return err
		}

		if scan {
			target, err := r.dst.Shape().Slice(slices...)
			if err != nil {
				return err
			}
			out.next = ml.NewCursor(target).Next
		}

		kern(newStream(load, view), out)

		var more, moreOut bool
		slices, more = aw.Next()
		_, moreOut = ow.Next()
		if !more || !moreOut {
			if more != moreOut && r.strict {
				return fmt.Errorf("%s: %w after %d steps (axis walker done: %t, output walker done: %t)",
					r.op.Name, ml.ErrWalkerDesync, steps+1, !more, !moreOut)
			}
			return nil
		}
	}
}
