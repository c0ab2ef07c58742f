package lang

import (
	"strings"
	"testing"
)

func TestNode_ASCII(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "empty statement",
			source: "",
			want:   "None\n",
		},
		{
			name:   "bare variable",
			source: "x",
			want: "None\n" +
				"|  |- var: 'x'\n",
		},
		{
			name:   "if with else",
			source: "if c; t : f",
			want: "None\n" +
				"|  |- if_block\n" +
				"|  |  |- if_condition: 'c'\n" +
				"|  |  |- if_body\n" +
				"|  |  |  |- var: 't'\n" +
				"|  |  |  |- var: 'f'\n",
		},
		{
			name:   "if without else",
			source: "if c; t",
			want: "None\n" +
				"|  |- if_block\n" +
				"|  |  |- if_condition: 'c'\n" +
				"|  |  |- if_body\n" +
				"|  |  |  |- var: 't'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.source, mustTokenize(t, tt.source))
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if got := root.ASCII(); got != tt.want {
				t.Errorf("ASCII() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestNode_DOT(t *testing.T) {
	source := "if c; t : f"

	root, err := Parse(source, mustTokenize(t, source))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	want := "graph {\n" +
		"  n0 [label=\"root\"];\n" +
		"  n0 -- n1;\n" +
		"  n1 [label=\"if_block\"];\n" +
		"  n1 -- n2;\n" +
		"  n2 [label=\"if_condition__c\"];\n" +
		"  n1 -- n3;\n" +
		"  n3 [label=\"if_body\"];\n" +
		"  n3 -- n4;\n" +
		"  n4 [label=\"var__t\"];\n" +
		"  n3 -- n5;\n" +
		"  n5 [label=\"var__f\"];\n" +
		"}\n"

	if got := root.DOT(); got != want {
		t.Errorf("DOT() =\n%s\nwant:\n%s", got, want)
	}
}

func TestNode_DOT_BareVariable(t *testing.T) {
	source := "hello"

	root, err := Parse(source, mustTokenize(t, source))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	got := root.DOT()

	for _, frag := range []string{
		"graph {",
		"n0 [label=\"root\"]",
		"n0 -- n1;",
		"n1 [label=\"var__hello\"]",
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("DOT() missing %q:\n%s", frag, got)
		}
	}
}
