package lang

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isIdentRune reports whether r may appear in a variable identifier.
func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Tokenize scans source left to right and returns its token sequence.
//
// Whitespace is skipped. At each non-whitespace offset the keyword
// table is consulted first: a keyword literal matching the source at
// that offset wins even when it is the prefix of a longer identifier
// (non-maximal-munch). Otherwise a maximal run of identifier runes is
// consumed as a TokenVariable. Any other rune fails with an [*Error]
// positioned at its byte offset.
func Tokenize(source string) ([]Token, error) {
	var toks []Token

	for i := 0; i < len(source); {
		r, size := utf8.DecodeRuneInString(source[i:])

		if unicode.IsSpace(r) {
			i += size

			continue
		}

		if typ, lit, ok := matchKeyword(source[i:]); ok {
			toks = append(toks, Token{Type: typ})
			i += len(lit)

			continue
		}

		if isIdentRune(r) {
			start := i

			for i < len(source) {
				r, size := utf8.DecodeRuneInString(source[i:])
				if !isIdentRune(r) {
					break
				}

				i += size
			}

			toks = append(toks, Token{Type: TokenVariable, Value: source[start:i]})

			continue
		}

		return nil, NewError(fmt.Sprintf("Unknown token: '%c'", r)).At(i)
	}

	return toks, nil
}

// matchKeyword reports the first keyword whose literal prefixes rest.
func matchKeyword(rest string) (TokenType, string, bool) {
	for _, kw := range keywords {
		if strings.HasPrefix(rest, kw.literal) {
			return kw.typ, kw.literal, true
		}
	}

	return 0, "", false
}
