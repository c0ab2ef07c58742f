// Package lang implements the tausch templating micro-language: a
// tokenizer, parser, and tree evaluator for statements that resolve
// variable references against a caller-supplied environment.
//
// # Grammar
//
// A statement is one of two shapes:
//
//	statement → variable
//	          | "if" variable ";" variable [":" variable]
//
// A bare variable evaluates to its value in the environment. An
// if-statement evaluates its condition variable (which must be boolean)
// and resolves to the first branch variable when true, the second when
// false, or the empty value when false and no else-branch is given.
//
// # Pipeline
//
// [Tokenize] lexes source text into tokens, [Parse] builds a binary
// tree with a synthetic root, and [Evaluate] walks the tree against a
// [Variables] environment. [EvalStatement] runs all three stages and
// additionally returns the tree for display (see [Node.WriteASCII] and
// [Node.DOT]).
//
// # Lexing policy
//
// Keyword literals are matched against the source at the current
// offset before identifier scanning, so a keyword embedded at the
// start of a longer word still wins: "iffy" lexes as the keyword "if"
// followed by the identifier "fy". This deviates from conventional
// maximal-munch lexers and is part of the language's definition.
//
// # Errors
//
// All failures are reported as [*Error] carrying a message, a location
// (byte offset for lexer errors, token index for parser errors, or
// [LocationNone]), and an optional remediation suggestion.
package lang
