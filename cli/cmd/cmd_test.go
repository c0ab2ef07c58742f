package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/tausch/lang"
)

func TestEnvironment_Demo(t *testing.T) {
	vars, err := environment(context.Background())
	if err != nil {
		t.Fatalf("environment error: %v", err)
	}

	tests := []struct {
		name string
		want lang.Value
	}{
		{name: "hello", want: lang.IntValue(42)},
		{name: "world", want: lang.IntValue(69)},
		{name: "cond", want: lang.BoolValue(true)},
		{name: "ncond", want: lang.BoolValue(false)},
	}

	for _, tt := range tests {
		if got := vars[tt.name]; got != tt.want {
			t.Errorf("vars[%q] = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestEnvironment_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vars.yaml")

	doc := []byte("greeting: hi\nenabled: true\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ctx := WithVarsPath(context.Background(), path)

	vars, err := environment(ctx)
	if err != nil {
		t.Fatalf("environment error: %v", err)
	}

	if got := vars["greeting"]; got != lang.TextValue("hi") {
		t.Errorf("greeting = %+v", got)
	}

	if got := vars["enabled"]; got != lang.BoolValue(true) {
		t.Errorf("enabled = %+v", got)
	}
}

func TestEnvironment_MissingFile(t *testing.T) {
	ctx := WithVarsPath(
		context.Background(),
		filepath.Join(t.TempDir(), "nope.yaml"),
	)

	_, err := environment(ctx)
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	ce := &Error{}
	if !errors.As(err, &ce) {
		t.Fatalf("expected *cmd.Error, got %T", err)
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()

	if got := varsPathFrom(ctx); got != "" {
		t.Errorf("unset vars path = %q, want empty", got)
	}

	if got := cacheDirFrom(ctx); got != "" {
		t.Errorf("unset cache dir = %q, want empty", got)
	}

	ctx = WithVarsPath(ctx, "/tmp/v.yaml")
	ctx = WithCacheDir(ctx, "/tmp/cache")

	if got := varsPathFrom(ctx); got != "/tmp/v.yaml" {
		t.Errorf("vars path = %q", got)
	}

	if got := cacheDirFrom(ctx); got != "/tmp/cache" {
		t.Errorf("cache dir = %q", got)
	}
}
