// Package profile provides optional runtime profiling for the tausch
// application.
//
// This package integrates [github.com/pkg/profile] behind conditional
// compilation. Profiling must be enabled at build time using the "pprof"
// build tag; without it every operation is a no-op with zero runtime
// overhead.
//
// Supported modes when built with the pprof tag are allocs, block,
// clock, cpu, goroutine, heap, mem, mutex, thread, and trace. Use
// [Modes] to retrieve the list programmatically. Profile files are
// written to the configured directory with names matching the mode
// (e.g. cpu.pprof) and analyzed with go tool pprof.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
