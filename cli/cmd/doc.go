// Package cmd implements the tausch subcommands.
//
// Each command is a kong-tagged struct with a Run method. Shared state
// parsed by the top-level CLI (the kong context, the variable file
// path, the cache directory) travels to commands through
// [context.Context] values.
package cmd
