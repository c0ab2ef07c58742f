package lang

// EvalStatement runs the full pipeline on one statement: tokenize,
// parse, evaluate. It returns the resolved value together with the
// parse tree so callers may render or inspect it.
//
// The first failing stage aborts the pipeline and its error is
// returned unchanged. On an evaluation failure the tree is still
// returned for inspection. The token sequence and tree are created
// fresh per call; nothing is cached across calls.
func EvalStatement(source string, vars Variables) (Value, *Node, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return Value{}, nil, err
	}

	root, err := Parse(source, tokens)
	if err != nil {
		return Value{}, nil, err
	}

	val, err := Evaluate(root, vars)
	if err != nil {
		return Value{}, root, err
	}

	return val, root, nil
}
