package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// LocationNone is the sentinel location for errors that have no meaningful
// source position, such as evaluation failures.
const LocationNone = -1337

// Error is the single error kind produced by the lexer, parser, and
// evaluator. Location carries a byte offset (lexer) or token index
// (parser), or LocationNone when not applicable. Suggestion, when
// non-empty, is a corrected form of the offending source text.
//
// Error implements both error and slog.LogValuer.
type Error struct {
	Message    string
	Suggestion string
	Location   int
	attrs      []slog.Attr
}

// NewError creates a new Error with a message and no location.
func NewError(msg string) *Error {
	return &Error{Message: msg, Location: LocationNone}
}

// At returns a copy of the error positioned at the given location.
func (e *Error) At(location int) *Error {
	c := *e
	c.Location = location

	return &c
}

// Suggest returns a copy of the error carrying a remediation suggestion.
func (e *Error) Suggest(s string) *Error {
	c := *e
	c.Suggestion = s

	return &c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	c := *e
	c.attrs = newAttrs

	return &c
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.Location != LocationNone {
		part = append(part, "failed at "+strconv.Itoa(e.Location))
	}

	part = append(part, e.Message)

	return strings.Join(part, ": ")
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	attrs = append(attrs, slog.String("error", e.Message))

	if e.Location != LocationNone {
		attrs = append(attrs, slog.Int("location", e.Location))
	}

	if e.Suggestion != "" {
		attrs = append(attrs, slog.String("suggestion", e.Suggestion))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}
