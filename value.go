package msitab

import (
	"fmt"
	"strconv"
)

// valueKind discriminates the Value union.
type valueKind uint8

const (
	valueNull valueKind = iota
	valueInt
	valueStr
)

// Value is one cell of a table row: null, a 32-bit integer or a string.
// Integer columns of both widths share the integer representation; the
// column descriptor carries the storage width.
type Value struct {
	kind valueKind
	num  int32
	str  string
}

// Null returns the null value.
func Null() Value { return Value{} }

// Int returns an integer value.
func Int(v int32) Value { return Value{kind: valueInt, num: v} }

// Int16Value returns an integer value from a 16-bit integer.
func Int16Value(v int16) Value { return Int(int32(v)) }

// Str returns a string value.
func Str(s string) Value { return Value{kind: valueStr, str: s} }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == valueNull }

// AsInt returns the integer payload, if v holds one.
func (v Value) AsInt() (int32, bool) { return v.num, v.kind == valueInt }

// AsStr returns the string payload, if v holds one.
func (v Value) AsStr() (string, bool) { return v.str, v.kind == valueStr }

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case valueInt:
		return strconv.FormatInt(int64(v.num), 10)
	case valueStr:
		return fmt.Sprintf("%q", v.str)
	default:
		return "NULL"
	}
}

// ToValue is implemented by any type that can be stored in a table cell.
// The generated ToRow methods convert every field through it.
type ToValue interface {
	ToValue() Value
}

// NullableValue converts an optional ToValue field: nil maps to null.
func NullableValue[T ToValue](p *T) Value {
	if p == nil {
		return Null()
	}
	return (*p).ToValue()
}

// NullableStr converts an optional string field: nil maps to null.
func NullableStr(p *string) Value {
	if p == nil {
		return Null()
	}
	return Str(*p)
}

// NullableInt16 converts an optional 16-bit integer field: nil maps to null.
func NullableInt16(p *int16) Value {
	if p == nil {
		return Null()
	}
	return Int16Value(*p)
}

// NullableInt32 converts an optional 32-bit integer field: nil maps to null.
func NullableInt32(p *int32) Value {
	if p == nil {
		return Null()
	}
	return Int(*p)
}

// PtrEqual reports whether two optional fields hold equal values. Two
// nils are equal; a nil never equals a non-nil. The generated conflict
// checks use it for optional primary key fields.
func PtrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
