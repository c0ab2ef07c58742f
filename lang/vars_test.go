package lang

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestVariables_Names(t *testing.T) {
	vars := Variables{
		"zulu":  IntValue(1),
		"alpha": IntValue(2),
		"mike":  IntValue(3),
	}

	got := vars.Names()
	want := []string{"alpha", "mike", "zulu"}

	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestVariablesFromMap(t *testing.T) {
	vars, err := VariablesFromMap(map[string]any{
		"b":  true,
		"i":  42,
		"i6": int64(7),
		"u6": uint64(9),
		"f":  float64(3),
		"s":  "text",
	})
	if err != nil {
		t.Fatalf("convert error: %v", err)
	}

	tests := []struct {
		name string
		want Value
	}{
		{name: "b", want: BoolValue(true)},
		{name: "i", want: IntValue(42)},
		{name: "i6", want: IntValue(7)},
		{name: "u6", want: IntValue(9)},
		{name: "f", want: IntValue(3)},
		{name: "s", want: TextValue("text")},
	}

	for _, tt := range tests {
		if got := vars[tt.name]; got != tt.want {
			t.Errorf("vars[%q] = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestVariablesFromMap_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "nested map", raw: map[string]any{"x": 1}},
		{name: "list", raw: []any{1, 2}},
		{name: "fractional float", raw: 1.5},
		{name: "nil", raw: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VariablesFromMap(map[string]any{"bad": tt.raw})
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			ve := &Error{}
			if !errors.As(err, &ve) {
				t.Fatalf("expected *lang.Error, got %T", err)
			}

			want := "Variable 'bad' has unsupported type"
			if len(ve.Message) < len(want) || ve.Message[:len(want)] != want {
				t.Errorf("message = %q, want prefix %q", ve.Message, want)
			}
		})
	}
}

func TestParseVariables(t *testing.T) {
	doc := []byte("hello: 42\nname: tausch\ncond: true\n")

	vars, err := ParseVariables(doc)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if got := vars["hello"]; got != IntValue(42) {
		t.Errorf("hello = %+v", got)
	}

	if got := vars["name"]; got != TextValue("tausch") {
		t.Errorf("name = %+v", got)
	}

	if got := vars["cond"]; got != BoolValue(true) {
		t.Errorf("cond = %+v", got)
	}
}

func TestParseVariables_Invalid(t *testing.T) {
	if _, err := ParseVariables([]byte("- just\n- a\n- list\n")); err == nil {
		t.Error("expected error for non-mapping document")
	}
}

func TestLoadVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vars.yaml")

	if err := os.WriteFile(path, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	vars, err := LoadVariables(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if got := vars["x"]; got != IntValue(1) {
		t.Errorf("x = %+v", got)
	}
}

func TestLoadVariables_Missing(t *testing.T) {
	if _, err := LoadVariables(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
