// registry.go - Registry der Reduktions-Operatoren
// Operatoren registrieren sich per init() und koennen ueber ihren Namen
// nachgeschlagen werden (z.B. von der CLI).
package reduce

import (
	"fmt"
	"maps"
	"slices"
)

// Kind identifies the algorithm an Operator runs.
type Kind int

const (
	KindAMin Kind = iota
	KindAMax
	KindArgMin
	KindArgMax
	KindSum
	KindProd
	KindCumSum
	KindMean
	KindVar
	KindStd
)

func (k Kind) String() string {
	switch k {
	case KindAMin:
		return "amin"
	case KindAMax:
		return "amax"
	case KindArgMin:
		return "argmin"
	case KindArgMax:
		return "argmax"
	case KindSum:
		return "sum"
	case KindProd:
		return "prod"
	case KindCumSum:
		return "cumsum"
	case KindMean:
		return "mean"
	case KindVar:
		return "var"
	case KindStd:
		return "std"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ordering kinds compare elements and seed from the first one.
func (k Kind) ordering() bool {
	return k == KindAMin || k == KindAMax || k == KindArgMin || k == KindArgMax
}

// positional kinds produce indices rather than values.
func (k Kind) positional() bool {
	return k == KindArgMin || k == KindArgMax
}

// scan kinds emit one value per input element.
func (k Kind) scan() bool {
	return k == KindCumSum
}

// statistic kinds depend on the slice length beyond a single pass and have
// no single-element shortcut.
func (k Kind) statistic() bool {
	return k == KindVar || k == KindStd
}

var operators = make(map[string]*Operator)

// Register adds op to the registry. It panics if the name is taken.
func Register(op *Operator) {
	if _, ok := operators[op.Name]; ok {
		panic("reduce: operator already registered: " + op.Name)
	}

	operators[op.Name] = op
}

// Lookup returns the operator registered under name.
func Lookup(name string) (*Operator, error) {
	if op, ok := operators[name]; ok {
		return op, nil
	}

	return nil, fmt.Errorf("unknown operator %q (available: %v)", name, Names())
}

// Names returns the registered operator names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(operators))
}

// Operators returns every registered operator sorted by name.
func Operators() []*Operator {
	ops := make([]*Operator, 0, len(operators))
	for _, name := range Names() {
		ops = append(ops, operators[name])
	}
	return ops
}

var (
	opAMin   = &Operator{Name: "amin", Kind: KindAMin, Description: "Minimum"}
	opAMax   = &Operator{Name: "amax", Kind: KindAMax, Description: "Maximum"}
	opArgMin = &Operator{Name: "argmin", Kind: KindArgMin, Description: "Index of the first minimum"}
	opArgMax = &Operator{Name: "argmax", Kind: KindArgMax, Description: "Index of the first maximum"}
	opSum    = &Operator{Name: "sum", Kind: KindSum, Description: "Sum"}
	opProd   = &Operator{Name: "prod", Kind: KindProd, Description: "Product"}
	opCumSum = &Operator{Name: "cumsum", Kind: KindCumSum, Description: "Cumulative sum"}
	opMean   = &Operator{Name: "mean", Kind: KindMean, Description: "Arithmetic mean"}
	opVar    = &Operator{Name: "var", Kind: KindVar, Description: "Variance"}
	opStd    = &Operator{Name: "std", Kind: KindStd, Description: "Standard deviation"}
)

func init() {
	for _, op := range []*Operator{opAMin, opAMax, opArgMin, opArgMax, opSum, opProd, opCumSum, opMean, opVar, opStd} {
		Register(op)
	}
}
