// dump.go - Dump-Funktionen fuer Array-Debugging und Ausgabe
// Dieses Modul stellt Hilfsfunktionen zum Ausgeben von Array-Inhalten bereit.
package ml

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/7blacky7/ndreduce/envconfig"
)

// DumpOptions configures array dump output format.
type DumpOptions func(*dumpOptions)

// DumpWithPrecision sets the number of decimal places to print. Applies to floating point types.
func DumpWithPrecision(n int) DumpOptions {
	return func(opts *dumpOptions) {
		opts.Precision = n
	}
}

// DumpWithThreshold sets the threshold for printing the entire array. If the number of elements
// is less than or equal to this value, the entire array will be printed. Otherwise, only the
// beginning and end of each dimension will be printed.
func DumpWithThreshold(n int) DumpOptions {
	return func(opts *dumpOptions) {
		opts.Threshold = n
	}
}

// DumpWithEdgeItems sets the number of elements to print at the beginning and end of each dimension.
func DumpWithEdgeItems(n int) DumpOptions {
	return func(opts *dumpOptions) {
		opts.EdgeItems = n
	}
}

type dumpOptions struct {
	Precision, Threshold, EdgeItems int
}

// Dump converts an array to a human-readable string representation.
// Defaults come from NDREDUCE_PRECISION, NDREDUCE_PRINT_THRESHOLD and NDREDUCE_EDGE_ITEMS.
func Dump(a *Array, optsFuncs ...DumpOptions) string {
	opts := dumpOptions{
		Precision: int(envconfig.Precision()),
		Threshold: int(envconfig.PrintThreshold()),
		EdgeItems: int(envconfig.EdgeItems()),
	}
	for _, optsFunc := range optsFuncs {
		optsFunc(&opts)
	}

	if a.Size() <= opts.Threshold {
		opts.EdgeItems = math.MaxInt
	}

	switch dt := a.DType(); {
	case dt == DTypeBool:
		return dump(a, opts.EdgeItems, func(v uint8) string {
			return strconv.FormatBool(v != 0)
		})
	case dt == DTypeFloat64:
		return dump(a, opts.EdgeItems, func(f float64) string {
			return strconv.FormatFloat(f, 'f', opts.Precision, 64)
		})
	case dt.IsFloat():
		return dump(a, opts.EdgeItems, func(f float32) string {
			return strconv.FormatFloat(float64(f), 'f', opts.Precision, 32)
		})
	case dt == DTypeUint64:
		return dump(a, opts.EdgeItems, func(u uint64) string {
			return strconv.FormatUint(u, 10)
		})
	case dt.IsInteger():
		return dump(a, opts.EdgeItems, func(i int64) string {
			return strconv.FormatInt(i, 10)
		})
	default:
		return "<unsupported>"
	}
}

func dump[E Number](a *Array, items int, fn func(E) string) string {
	s := Values[E](a)
	shape := a.Dims()

	if len(shape) == 0 {
		return fn(s[0])
	}

	var sb strings.Builder
	var f func([]int, int)
	f = func(dims []int, stride int) {
		prefix := strings.Repeat(" ", len(shape)-len(dims)+1)
		sb.WriteString("[")
		defer func() { sb.WriteString("]") }()
		for i := 0; i < dims[0]; i++ {
			if i >= items && i < dims[0]-items {
				sb.WriteString("..., ")
				// skip to next printable element
				skip := dims[0] - 2*items
				if len(dims) > 1 {
					stride += mul(dims[1:]...) * skip
					fmt.Fprint(&sb, strings.Repeat("\n", len(dims)-1), prefix)
				}
				i += skip - 1
			} else if len(dims) > 1 {
				f(dims[1:], stride)
				stride += mul(dims[1:]...)
				if i < dims[0]-1 {
					fmt.Fprint(&sb, ",", strings.Repeat("\n", len(dims)-1), prefix)
				}
			} else {
				text := fn(s[stride+i])
				if len(text) > 0 && text[0] != '-' {
					sb.WriteString(" ")
				}

				sb.WriteString(text)
				if i < dims[0]-1 {
					sb.WriteString(", ")
				}
			}
		}
	}
	f(shape, 0)

	return sb.String()
}

func mul(s ...int) int {
	p := 1
	for _, v := range s {
		p *= v
	}
	return p
}
