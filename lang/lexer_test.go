package lang

import (
	"errors"
	"testing"
)

func TestTokenize_Whitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "spaces", input: "    "},
		{name: "tabs and newlines", input: "\t\n \r\n"},
		{name: "unicode whitespace", input: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("tokenize error: %v", err)
			}

			if len(toks) != 0 {
				t.Errorf("expected no tokens, got %d", len(toks))
			}
		})
	}
}

func TestTokenize_Statements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "bare variable",
			input: "hello",
			want:  []Token{{Type: TokenVariable, Value: "hello"}},
		},
		{
			name:  "identifier with underscore and digits",
			input: "my_var2",
			want:  []Token{{Type: TokenVariable, Value: "my_var2"}},
		},
		{
			name:  "full if statement",
			input: "if cond; a : b",
			want: []Token{
				{Type: TokenIfStart},
				{Type: TokenVariable, Value: "cond"},
				{Type: TokenIfEnd},
				{Type: TokenVariable, Value: "a"},
				{Type: TokenIfElse},
				{Type: TokenVariable, Value: "b"},
			},
		},
		{
			name:  "keywords without spacing",
			input: "if cond;a:b",
			want: []Token{
				{Type: TokenIfStart},
				{Type: TokenVariable, Value: "cond"},
				{Type: TokenIfEnd},
				{Type: TokenVariable, Value: "a"},
				{Type: TokenIfElse},
				{Type: TokenVariable, Value: "b"},
			},
		},
		{
			name:  "negate keyword",
			input: "! x",
			want: []Token{
				{Type: TokenIfNegate},
				{Type: TokenVariable, Value: "x"},
			},
		},
		{
			name:  "unicode identifier",
			input: "héllo",
			want:  []Token{{Type: TokenVariable, Value: "héllo"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("tokenize error: %v", err)
			}

			assertTokens(t, toks, tt.want)
		})
	}
}

// Keyword literals are matched before identifier scanning, so "if"
// wins at the start of a longer word.
func TestTokenize_KeywordPrefixWins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "if prefix splits identifier",
			input: "iffy",
			want: []Token{
				{Type: TokenIfStart},
				{Type: TokenVariable, Value: "fy"},
			},
		},
		{
			name:  "keyword mid-word survives intact",
			input: "aifb",
			want:  []Token{{Type: TokenVariable, Value: "aifb"}},
		},
		{
			name:  "repeated prefix",
			input: "ifif",
			want: []Token{
				{Type: TokenIfStart},
				{Type: TokenIfStart},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("tokenize error: %v", err)
			}

			assertTokens(t, toks, tt.want)
		})
	}
}

func TestTokenize_UnknownToken(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
		wantLoc int
	}{
		{
			name:    "question mark",
			input:   "what?",
			wantMsg: "Unknown token: '?'",
			wantLoc: 4,
		},
		{
			name:    "leading garbage",
			input:   "#x",
			wantMsg: "Unknown token: '#'",
			wantLoc: 0,
		},
		{
			name:    "after whitespace",
			input:   "a  $",
			wantMsg: "Unknown token: '$'",
			wantLoc: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}

			le := &Error{}
			if !errors.As(err, &le) {
				t.Fatalf("expected *lang.Error, got %T", err)
			}

			if le.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", le.Message, tt.wantMsg)
			}

			if le.Location != tt.wantLoc {
				t.Errorf("location = %d, want %d", le.Location, tt.wantLoc)
			}
		})
	}
}

func assertTokens(t *testing.T, got, want []Token) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}

	for i := range want {
		if got[i].Type != want[i].Type {
			t.Errorf("token %d type = %s, want %s", i, got[i].Type, want[i].Type)
		}

		if got[i].Value != want[i].Value {
			t.Errorf("token %d value = %q, want %q", i, got[i].Value, want[i].Value)
		}
	}
}
