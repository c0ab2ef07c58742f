package lang

import "fmt"

// Parse consumes tokens in a single forward pass and builds the parse
// tree. The source text is used only to compose remediation
// suggestions for unterminated if-statements.
//
// Bare variables are inserted on the tree's left spine and if-blocks
// on its right spine, both via the chaining insertion rule of
// [Node.InsertLeft] and [Node.InsertRight]. Statements containing
// multiple top-level constructs are therefore preserved in source
// order rather than rejected; evaluation consults only the outermost
// node of each spine.
//
// Errors carry the index of the offending token.
func Parse(source string, tokens []Token) (*Node, error) {
	root := &Node{}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Type {
		case TokenVariable:
			root.InsertLeft(&Node{Op: &Op{Type: OpVariable, Value: tok.Value}})

		case TokenIfStart:
			block, next, err := parseIf(source, tokens, i)
			if err != nil {
				return nil, err
			}

			root.InsertRight(block)
			i = next

		default:
			return nil, NewError(fmt.Sprintf(
				"Did not expect token of type %s", tok.Type,
			)).At(i)
		}
	}

	return root, nil
}

// parseIf assembles one if-construct starting at the TokenIfStart at
// index i. It returns the IfBlock node and the index of the last token
// consumed.
//
// The token order is fixed: condition variable, ";", true-branch
// variable, then optionally ":" followed by the false-branch variable.
func parseIf(source string, tokens []Token, i int) (*Node, int, error) {
	if !expect(tokens, i+1, TokenVariable) {
		return nil, i, NewError("Variable name expected").At(i + 1)
	}

	i++
	block := &Node{
		Op:   &Op{Type: OpIfBlock},
		Left: &Node{Op: &Op{Type: OpIfCondition, Value: tokens[i].Value}},
	}

	if !expect(tokens, i+1, TokenIfEnd) {
		return nil, i, NewError("Unterminated 'if'").
			At(i + 1).
			Suggest(source + keywordLiteral(TokenIfEnd))
	}

	i++

	if !expect(tokens, i+1, TokenVariable) {
		return nil, i, NewError("'if'-body must contain variable").At(i + 1)
	}

	i++
	body := &Node{
		Op:   &Op{Type: OpIfBody},
		Left: &Node{Op: &Op{Type: OpVariable, Value: tokens[i].Value}},
	}

	if expect(tokens, i+1, TokenIfElse) {
		i++

		if !expect(tokens, i+1, TokenVariable) {
			return nil, i, NewError(fmt.Sprintf(
				"Expected variable after '%s'", keywordLiteral(TokenIfElse),
			)).At(i)
		}

		i++
		body.Right = &Node{Op: &Op{Type: OpVariable, Value: tokens[i].Value}}
	}

	block.Right = body

	return block, i, nil
}

// expect reports whether tokens holds a token of type typ at index i.
func expect(tokens []Token, i int, typ TokenType) bool {
	return i < len(tokens) && tokens[i].Type == typ
}
