package lang

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	// TokenVariable is an identifier referencing an environment variable.
	TokenVariable TokenType = iota

	// TokenIfStart is the "if" keyword opening a conditional statement.
	TokenIfStart

	// TokenIfNegate is the "!" keyword. It is lexed but not yet accepted
	// by the parser; see the package documentation.
	TokenIfNegate

	// TokenIfEnd is the ";" keyword terminating an if-condition.
	TokenIfEnd

	// TokenIfElse is the ":" keyword introducing an else-branch.
	TokenIfElse
)

// String returns a string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenVariable:
		return "Variable"
	case TokenIfStart:
		return "IfStart"
	case TokenIfNegate:
		return "IfNegate"
	case TokenIfEnd:
		return "IfEnd"
	case TokenIfElse:
		return "IfElse"
	default:
		return "Unknown"
	}
}

// Token is a lexical token produced by [Tokenize]. Value holds the
// identifier text for TokenVariable and is empty for keyword tokens.
type Token struct {
	Value string
	Type  TokenType
}

// keyword binds a token type to its fixed literal.
type keyword struct {
	literal string
	typ     TokenType
}

// keywords is the fixed keyword table. Literals share no prefixes, so
// match order is not observable.
var keywords = []keyword{
	{"if", TokenIfStart},
	{";", TokenIfEnd},
	{":", TokenIfElse},
	{"!", TokenIfNegate},
}

// keywordLiteral returns the literal for a keyword token type, or ""
// for non-keyword types.
func keywordLiteral(t TokenType) string {
	for _, kw := range keywords {
		if kw.typ == t {
			return kw.literal
		}
	}

	return ""
}
