package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/tausch/lang"
)

// Tree prints the parse tree of a statement without evaluating it, so
// statements referencing undefined variables can still be inspected.
type Tree struct {
	Statement []string `arg:"" help:"Statement to parse" name:"statement"`

	Format string `default:"ascii" enum:"ascii,dot" help:"Output format"`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) error {
	source := strings.Join(t.Statement, " ")

	tokens, err := lang.Tokenize(source)
	if err != nil {
		return ErrReadStatement.Wrap(err).
			With(slog.String("statement", source))
	}

	root, err := lang.Parse(source, tokens)
	if err != nil {
		return ErrReadStatement.Wrap(err).
			With(slog.String("statement", source))
	}

	out := stdout(ctx)

	switch t.Format {
	case "dot":
		fmt.Fprint(out, root.DOT())
	default:
		if err := root.WriteASCII(out); err != nil {
			return ErrRenderTree.Wrap(err)
		}
	}

	return nil
}
