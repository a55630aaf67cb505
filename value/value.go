// Package value defines the closed tagged variant stored in rowstore cells.
//
// A Value is exactly one of a fixed set of kinds at any time: Integer,
// Float, Text, Boolean, or Absent. Extraction is fallible and
// variant-checked; there is no implicit coercion between kinds.
package value

// Kind identifies the concrete variant stored in a Value.
type Kind uint8

const (
	// KindInvalid represents the zero Kind. It is never a valid cell kind.
	KindInvalid Kind = iota
	// KindAbsent represents a missing/null cell.
	KindAbsent
	// KindInteger represents an int64 value.
	KindInteger
	// KindFloat represents a float64 value.
	KindFloat
	// KindText represents a string value.
	KindText
	// KindBoolean represents a bool value.
	KindBoolean
)

// String returns a lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	default:
		return "invalid"
	}
}

// Cell reports whether the kind may be declared for a column.
// Absent and the zero kind are cell states, not column types.
func (k Kind) Cell() bool {
	switch k {
	case KindInteger, KindFloat, KindText, KindBoolean:
		return true
	default:
		return false
	}
}

// Value is a small typed cell value.
//
// The struct encoding (discriminant plus per-kind payload fields) keeps
// values comparable and allocation-free for everything but text.
//
// NOTE: The JSON field names are part of the codec surface; keep them stable.
type Value struct {
	Kind Kind    `json:"k"`
	I64  int64   `json:"i,omitempty"`
	F64  float64 `json:"f,omitempty"`
	S    string  `json:"s,omitempty"`
	B    bool    `json:"b,omitempty"`
}

// Int returns an Integer value.
func Int(v int64) Value { return Value{Kind: KindInteger, I64: v} }

// Float returns a Float value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// Text returns a Text value.
func Text(s string) Value { return Value{Kind: KindText, S: s} }

// Bool returns a Boolean value.
func Bool(b bool) Value { return Value{Kind: KindBoolean, B: b} }

// Absent returns the missing/null value.
func Absent() Value { return Value{Kind: KindAbsent} }

// IsAbsent reports whether the value is the missing/null variant.
func (v Value) IsAbsent() bool { return v.Kind == KindAbsent }

// AsInt returns the int64 payload if Kind is KindInteger.
func (v Value) AsInt() (int64, bool) {
	if v.Kind != KindInteger {
		return 0, false
	}
	return v.I64, true
}

// AsFloat returns the float64 payload if Kind is KindFloat.
func (v Value) AsFloat() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsText returns the string payload if Kind is KindText.
func (v Value) AsText() (string, bool) {
	if v.Kind != KindText {
		return "", false
	}
	return v.S, true
}

// AsBool returns the bool payload if Kind is KindBoolean.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBoolean {
		return false, false
	}
	return v.B, true
}

// Equal reports payload equality within the same kind.
// Values of different kinds are never equal; Absent equals Absent.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindAbsent:
		return true
	case KindInteger:
		return v.I64 == o.I64
	case KindFloat:
		return v.F64 == o.F64
	case KindText:
		return v.S == o.S
	case KindBoolean:
		return v.B == o.B
	default:
		return false
	}
}
