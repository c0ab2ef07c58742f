// Package repl implements the interactive read-eval-print loop.
//
// The loop is a [github.com/charmbracelet/bubbletea] program with two
// input modes toggled by Esc: eval mode submits statements to the
// interpreter, and control mode accepts session commands (help, vars,
// tree, dot, clear, quit). Completion candidates are matched with
// [github.com/sahilm/fuzzy] and cycled with Tab. Submitted lines are
// persisted to a mode-tagged history file in the cache directory.
package repl
