// kernels.go - generische Reduktions-Kernel
//
// Jeder Kernel ist genau einmal geschrieben und nur ueber den Akkumulator-Typ A
// parametrisiert. Er konsumiert einen Stream und schreibt seine Ergebnisse
// ueber eine sink in die Ausgabe; welche Ausgabe-Zelle beschrieben wird,
// entscheidet die Engine.
package reduce

import (
	"math"

	"github.com/7blacky7/ndreduce/ml"
)

// sink writes kernel results to successive output positions.
type sink[A ml.Number] struct {
	next  func() int
	value func(int, A)
	index func(int, int64)
}

func newSink[A ml.Number](b *ml.Buffer) *sink[A] {
	return &sink[A]{value: ml.Storer[A](b), index: ml.Storer[int64](b)}
}

func (s *sink[A]) put(v A) {
	s.value(s.next(), v)
}

func (s *sink[A]) putIndex(i int64) {
	s.index(s.next(), i)
}

type kernel[A ml.Number] func(s *Stream[A], out *sink[A])

func kernelFor[A ml.Number](k Kind, ddof int) kernel[A] {
	switch k {
	case KindAMin:
		return func(s *Stream[A], out *sink[A]) { out.put(amin(s)) }
	case KindAMax:
		return func(s *Stream[A], out *sink[A]) { out.put(amax(s)) }
	case KindArgMin:
		return func(s *Stream[A], out *sink[A]) { out.putIndex(argmin(s)) }
	case KindArgMax:
		return func(s *Stream[A], out *sink[A]) { out.putIndex(argmax(s)) }
	case KindSum:
		return func(s *Stream[A], out *sink[A]) { out.put(sum(s)) }
	case KindProd:
		return func(s *Stream[A], out *sink[A]) { out.put(prod(s)) }
	case KindCumSum:
		return cumsum[A]
	case KindMean:
		return func(s *Stream[A], out *sink[A]) { out.put(mean(s)) }
	case KindVar:
		return func(s *Stream[A], out *sink[A]) { out.put(variance(s, ddof)) }
	case KindStd:
		return func(s *Stream[A], out *sink[A]) {
			out.put(A(math.Sqrt(float64(variance(s, ddof)))))
		}
	default:
		panic("reduce: no kernel for " + k.String())
	}
}

func amin[A ml.Number](s *Stream[A]) A {
	acc := s.Next()
	for s.HasNext() {
		if v := s.Next(); v < acc {
			acc = v
		}
	}
	return acc
}

func amax[A ml.Number](s *Stream[A]) A {
	acc := s.Next()
	for s.HasNext() {
		if v := s.Next(); v > acc {
			acc = v
		}
	}
	return acc
}

// argmin only moves on a strictly smaller element so ties keep the earliest index.
func argmin[A ml.Number](s *Stream[A]) int64 {
	acc, at := s.Next(), int64(0)
	for i := int64(1); s.HasNext(); i++ {
		if v := s.Next(); v < acc {
			acc, at = v, i
		}
	}
	return at
}

func argmax[A ml.Number](s *Stream[A]) int64 {
	acc, at := s.Next(), int64(0)
	for i := int64(1); s.HasNext(); i++ {
		if v := s.Next(); v > acc {
			acc, at = v, i
		}
	}
	return at
}

func sum[A ml.Number](s *Stream[A]) A {
	acc, _ := Identity[A](KindSum)
	for s.HasNext() {
		acc += s.Next()
	}
	return acc
}

func prod[A ml.Number](s *Stream[A]) A {
	acc, _ := Identity[A](KindProd)
	for s.HasNext() {
		acc *= s.Next()
	}
	return acc
}

// cumsum emits the running sum after every element, in pull order.
func cumsum[A ml.Number](s *Stream[A], out *sink[A]) {
	acc, _ := Identity[A](KindCumSum)
	for s.HasNext() {
		acc += s.Next()
		out.put(acc)
	}
}

// mean divides once, after the whole slice has been summed.
func mean[A ml.Number](s *Stream[A]) A {
	n := s.Len()
	return sum(s) / A(n)
}

// variance is the two-pass form: the mean first, then the squared deviations.
// The divisor is len - ddof, clamped at zero.
func variance[A ml.Number](s *Stream[A], ddof int) A {
	xs := make([]A, 0, s.Len())
	var total A
	for s.HasNext() {
		v := s.Next()
		xs = append(xs, v)
		total += v
	}

	m := total / A(len(xs))
	var sq A
	for _, v := range xs {
		d := v - m
		sq += d * d
	}
	return sq / A(max(len(xs)-ddof, 0))
}
