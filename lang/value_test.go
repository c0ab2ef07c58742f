package lang

import "testing"

func TestValue_String(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		want string
	}{
		{name: "zero value", val: Value{}, want: ""},
		{name: "int", val: IntValue(42), want: "42"},
		{name: "negative int", val: IntValue(-7), want: "-7"},
		{name: "text", val: TextValue("hi"), want: "hi"},
		{name: "empty text", val: TextValue(""), want: ""},
		{name: "true", val: BoolValue(true), want: "true"},
		{name: "false", val: BoolValue(false), want: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_IsEmpty(t *testing.T) {
	if !(Value{}).IsEmpty() {
		t.Error("zero value must be empty")
	}

	// A text value is non-empty even when its payload is "".
	if TextValue("").IsEmpty() {
		t.Error("empty text value must not be the empty value")
	}

	if IntValue(0).IsEmpty() {
		t.Error("zero int value must not be the empty value")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEmpty, "empty"},
		{KindInt, "int"},
		{KindText, "text"},
		{KindBool, "bool"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
