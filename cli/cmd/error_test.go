package cmd

import (
	"errors"
	"log/slog"
	"testing"
)

func TestError_Error(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "message only", err: NewError("msg"), want: "msg"},
		{name: "wrapped", err: NewError("msg").Wrap(cause), want: "msg: boom"},
		{name: "empty message", err: NewError("").Wrap(cause), want: "boom"},
		{name: "empty", err: NewError(""), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := ErrLoadVars.Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

func TestError_WithIsImmutable(t *testing.T) {
	base := NewError("msg")
	derived := base.With(slog.String("k", "v"))

	if len(base.attrs) != 0 {
		t.Errorf("receiver attrs changed: %v", base.attrs)
	}

	if len(derived.attrs) != 1 {
		t.Errorf("derived attrs = %v", derived.attrs)
	}
}
