package cmd

import (
	"context"

	"github.com/ardnew/tausch/cli/cmd/repl"
	"github.com/ardnew/tausch/log"
)

// Repl starts the interactive read-eval-print loop.
type Repl struct{}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	vars, err := environment(ctx)
	if err != nil {
		return err
	}

	return repl.Run(ctx, vars, cacheDirFrom(ctx), log.Default())
}
