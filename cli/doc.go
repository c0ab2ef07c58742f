// Package cli declares the command-line interface for tausch.
//
// The interface is declared as tagged struct fields parsed by
// [github.com/alecthomas/kong]. Logging and profiling flags are shared
// flag groups embedded into the top-level [CLI] struct; subcommands
// live in the cmd subpackage.
package cli
