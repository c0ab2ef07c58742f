package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/tausch/lang"
	"github.com/ardnew/tausch/log"
)

type (
	contextKey  struct{}
	varsPathKey struct{}
	cacheDirKey struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithVarsPath returns a new context.Context carrying the path of the
// variable environment file. An empty path selects the built-in demo
// environment.
func WithVarsPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, varsPathKey{}, path)
}

func varsPathFrom(ctx context.Context) string {
	path, _ := ctx.Value(varsPathKey{}).(string)

	return path
}

// WithCacheDir returns a new context.Context carrying the cache
// directory path used for transient files such as session history.
func WithCacheDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, cacheDirKey{}, dir)
}

func cacheDirFrom(ctx context.Context) string {
	dir, _ := ctx.Value(cacheDirKey{}).(string)

	return dir
}

// stdout returns the output stream of the parsed kong context, or
// os.Stdout when running outside of kong (such as in tests).
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// demoVariables is the fallback environment used when no variable file
// is given. It defines a pair of integers and both boolean polarities,
// enough to exercise every statement form.
func demoVariables() lang.Variables {
	return lang.Variables{
		"hello": lang.IntValue(42),
		"world": lang.IntValue(69),
		"cond":  lang.BoolValue(true),
		"ncond": lang.BoolValue(false),
	}
}

// environment resolves the variable environment for a command: the
// YAML file named on the command line, or the demo environment when
// none was given.
func environment(ctx context.Context) (lang.Variables, error) {
	path := varsPathFrom(ctx)
	if path == "" {
		log.DebugContext(ctx, "no variable file given, using demo environment")

		return demoVariables(), nil
	}

	vars, err := lang.LoadVariables(path)
	if err != nil {
		return nil, ErrLoadVars.Wrap(err).
			With(slog.String("path", path))
	}

	log.DebugContext(ctx, "variable environment loaded",
		slog.String("path", path),
		slog.Int("count", len(vars)),
	)

	return vars, nil
}
