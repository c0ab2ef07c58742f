package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/tausch/lang"
)

// Eval evaluates a single statement against the variable environment
// and prints the resolved value.
type Eval struct {
	Statement []string `arg:"" help:"Statement to evaluate" name:"statement"`

	Tree bool `help:"Print the parse tree after the result" short:"t"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	vars, err := environment(ctx)
	if err != nil {
		return err
	}

	source := strings.Join(e.Statement, " ")

	val, root, err := lang.EvalStatement(source, vars)
	if err != nil {
		return ErrEvalStatement.Wrap(err).
			With(slog.String("statement", source))
	}

	out := stdout(ctx)

	fmt.Fprintln(out, val.String())

	if e.Tree {
		if err := root.WriteASCII(out); err != nil {
			return ErrRenderTree.Wrap(err)
		}
	}

	return nil
}
