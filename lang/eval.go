package lang

import "fmt"

// Evaluate walks the parse tree against the variable environment and
// returns the resolved value.
//
// The tree shape guaranteed by [Parse] is re-validated node by node;
// a malformed tree fails with a generic "Parse error" message since it
// indicates a construction bug rather than a user mistake. Unresolved
// identifiers and non-boolean conditions fail with messages naming the
// variable. Evaluation has no side effects and is idempotent for an
// unchanged tree and environment.
func Evaluate(root *Node, vars Variables) (Value, error) {
	if root == nil {
		return Value{}, errParse
	}

	if root.Left != nil {
		return evalVariable(root.Left, vars)
	}

	if root.Right != nil {
		return evalIf(root.Right, vars)
	}

	// Empty statement: empty value, no error.
	return Value{}, nil
}

// Defensive validation failures share one generic message.
var errParse = NewError("Parse error")

// evalVariable resolves a bare-variable leaf.
func evalVariable(n *Node, vars Variables) (Value, error) {
	if n.Op == nil {
		return Value{}, NewError("No operation")
	}

	if n.Op.Type != OpVariable {
		return Value{}, errParse
	}

	return lookup(vars, n.Op.Value)
}

// evalIf validates the fixed if-shape and resolves the selected branch.
func evalIf(block *Node, vars Variables) (Value, error) {
	if block.Op == nil || block.Op.Type != OpIfBlock {
		return Value{}, errParse
	}

	cond := block.Left
	if cond == nil || cond.Op == nil || cond.Op.Type != OpIfCondition {
		return Value{}, errParse
	}

	condVal, err := lookup(vars, cond.Op.Value)
	if err != nil {
		return Value{}, err
	}

	if condVal.Kind != KindBool {
		return Value{}, NewError(fmt.Sprintf(
			"Variable '%s' must be boolean", cond.Op.Value,
		))
	}

	body := block.Right
	if body == nil || body.Op == nil || body.Op.Type != OpIfBody {
		return Value{}, errParse
	}

	onTrue := body.Left
	if onTrue == nil || onTrue.Op == nil || onTrue.Op.Type != OpVariable {
		return Value{}, errParse
	}

	trueVal, err := lookup(vars, onTrue.Op.Value)
	if err != nil {
		return Value{}, err
	}

	if condVal.Bool {
		return trueVal, nil
	}

	onFalse := body.Right
	if onFalse == nil {
		// False condition without an else-branch: empty value, no error.
		return Value{}, nil
	}

	if onFalse.Op == nil || onFalse.Op.Type != OpVariable {
		return Value{}, errParse
	}

	return lookup(vars, onFalse.Op.Value)
}

// lookup resolves name in the environment.
func lookup(vars Variables, name string) (Value, error) {
	val, ok := vars[name]
	if !ok {
		return Value{}, NewError(fmt.Sprintf("Variable '%s' not found", name))
	}

	return val, nil
}
