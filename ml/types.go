// types.go - Datentypen fuer Array-Elemente
// Dieses Modul definiert DType, die Element-Typen die ein Array halten kann,
// sowie Parsing und Groessen-Informationen.
package ml

import (
	"fmt"
	"strings"
)

// DType represents the data type of array elements.
type DType int

const (
	DTypeBool DType = iota
	DTypeUint8
	DTypeUint16
	DTypeUint32
	DTypeUint64
	DTypeInt8
	DTypeInt16
	DTypeInt32
	DTypeInt64
	DTypeFloat16
	DTypeFloat32
	DTypeFloat64
	DTypeBfloat16
)

// DTypes lists every supported element type in declaration order.
var DTypes = []DType{
	DTypeBool,
	DTypeUint8, DTypeUint16, DTypeUint32, DTypeUint64,
	DTypeInt8, DTypeInt16, DTypeInt32, DTypeInt64,
	DTypeFloat16, DTypeFloat32, DTypeFloat64, DTypeBfloat16,
}

// Valid reports whether d is one of the supported element types.
func (d DType) Valid() bool {
	return d >= DTypeBool && d <= DTypeBfloat16
}

// String gibt den numpy-artigen Namen des DType zurueck
func (d DType) String() string {
	switch d {
	case DTypeBool:
		return "bool"
	case DTypeUint8:
		return "uint8"
	case DTypeUint16:
		return "uint16"
	case DTypeUint32:
		return "uint32"
	case DTypeUint64:
		return "uint64"
	case DTypeInt8:
		return "int8"
	case DTypeInt16:
		return "int16"
	case DTypeInt32:
		return "int32"
	case DTypeInt64:
		return "int64"
	case DTypeFloat16:
		return "float16"
	case DTypeFloat32:
		return "float32"
	case DTypeFloat64:
		return "float64"
	case DTypeBfloat16:
		return "bfloat16"
	default:
		return fmt.Sprintf("DType(%d)", int(d))
	}
}

// Size returns the size of a single element in bytes.
func (d DType) Size() int {
	switch d {
	case DTypeBool, DTypeUint8, DTypeInt8:
		return 1
	case DTypeUint16, DTypeInt16, DTypeFloat16, DTypeBfloat16:
		return 2
	case DTypeUint32, DTypeInt32, DTypeFloat32:
		return 4
	case DTypeUint64, DTypeInt64, DTypeFloat64:
		return 8
	default:
		return 0
	}
}

// IsFloat prueft ob der DType ein Gleitkomma-Typ ist
func (d DType) IsFloat() bool {
	switch d {
	case DTypeFloat16, DTypeFloat32, DTypeFloat64, DTypeBfloat16:
		return true
	default:
		return false
	}
}

// IsInteger reports whether d is a signed or unsigned integer type. Bool is
// not an integer type.
func (d DType) IsInteger() bool {
	return d >= DTypeUint8 && d <= DTypeInt64
}

// IsSigned prueft ob der DType vorzeichenbehaftet ist
func (d DType) IsSigned() bool {
	return d.IsFloat() || (d >= DTypeInt8 && d <= DTypeInt64)
}

// ParseDType parst einen DType aus einem String
// Akzeptiert numpy-Namen sowie die gaengigen Kurzformen (f32, i64, ...)
func ParseDType(s string) (DType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bool", "b1":
		return DTypeBool, nil
	case "uint8", "u8", "byte":
		return DTypeUint8, nil
	case "uint16", "u16":
		return DTypeUint16, nil
	case "uint32", "u32":
		return DTypeUint32, nil
	case "uint64", "u64":
		return DTypeUint64, nil
	case "int8", "i8":
		return DTypeInt8, nil
	case "int16", "i16", "short":
		return DTypeInt16, nil
	case "int32", "i32", "int":
		return DTypeInt32, nil
	case "int64", "i64", "long":
		return DTypeInt64, nil
	case "float16", "f16", "half":
		return DTypeFloat16, nil
	case "float32", "f32", "float", "single":
		return DTypeFloat32, nil
	case "float64", "f64", "double":
		return DTypeFloat64, nil
	case "bfloat16", "bf16":
		return DTypeBfloat16, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, s)
	}
}
