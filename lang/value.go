package lang

import "strconv"

// Kind identifies the type of a [Value].
type Kind int

const (
	// KindEmpty is the zero Value kind: the result of an if-statement
	// whose condition is false and which has no else-branch, or of an
	// empty statement.
	KindEmpty Kind = iota

	// KindInt is an integer value.
	KindInt

	// KindText is a text value.
	KindText

	// KindBool is a boolean value.
	KindBool
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInt:
		return "int"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a tagged scalar: an integer, text, or boolean, or the empty
// value. The zero Value is empty. Exactly the field selected by Kind
// is meaningful.
type Value struct {
	Text string
	Int  int
	Kind Kind
	Bool bool
}

// IntValue returns an integer Value.
func IntValue(i int) Value { return Value{Kind: KindInt, Int: i} }

// TextValue returns a text Value.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IsEmpty reports whether v is the empty value.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// String renders the value for display. The empty value renders as "".
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.Itoa(v.Int)
	case KindText:
		return v.Text
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}
