package lang

import (
	"log/slog"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  NewError("boom"),
			want: "boom",
		},
		{
			name: "with location",
			err:  NewError("boom").At(3),
			want: "failed at 3: boom",
		},
		{
			name: "location zero is meaningful",
			err:  NewError("boom").At(0),
			want: "failed at 0: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// At, Suggest, and With return copies and never mutate the receiver.
func TestError_Immutable(t *testing.T) {
	base := NewError("boom")

	located := base.At(7)
	if base.Location != LocationNone {
		t.Errorf("receiver location changed: %d", base.Location)
	}

	if located.Location != 7 {
		t.Errorf("copy location = %d, want 7", located.Location)
	}

	suggested := base.Suggest("fix it")
	if base.Suggestion != "" {
		t.Errorf("receiver suggestion changed: %q", base.Suggestion)
	}

	if suggested.Suggestion != "fix it" {
		t.Errorf("copy suggestion = %q", suggested.Suggestion)
	}

	attributed := base.With(slog.String("k", "v"))
	if len(base.attrs) != 0 {
		t.Errorf("receiver attrs changed: %v", base.attrs)
	}

	if len(attributed.attrs) != 1 {
		t.Errorf("copy attrs = %v", attributed.attrs)
	}
}

func TestError_LogValue(t *testing.T) {
	err := NewError("boom").At(3).Suggest("fix")

	val := err.LogValue()
	if val.Kind() != slog.KindGroup {
		t.Fatalf("kind = %v, want group", val.Kind())
	}

	got := map[string]slog.Value{}
	for _, attr := range val.Group() {
		got[attr.Key] = attr.Value
	}

	if v, ok := got["error"]; !ok || v.String() != "boom" {
		t.Errorf("error attr = %v", v)
	}

	if v, ok := got["location"]; !ok || v.Int64() != 3 {
		t.Errorf("location attr = %v", v)
	}

	if v, ok := got["suggestion"]; !ok || v.String() != "fix" {
		t.Errorf("suggestion attr = %v", v)
	}
}

func TestError_LogValueOmitsSentinel(t *testing.T) {
	val := NewError("boom").LogValue()

	for _, attr := range val.Group() {
		if attr.Key == "location" {
			t.Error("sentinel location must be omitted")
		}

		if attr.Key == "suggestion" {
			t.Error("empty suggestion must be omitted")
		}
	}
}
