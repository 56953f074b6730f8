// Package profile provides optional runtime profiling for funcad.
//
// Profiling is built on [github.com/pkg/profile] and is compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag every [Profiler] is a no-op and [Modes] reports nothing.
//
// # Modes
//
// With the tag, [Modes] lists the supported modes:
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     blocking profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution tracing
//
// # Usage
//
//	p := profile.New(
//		profile.WithMode("cpu"),
//		profile.WithDir("/tmp/funcad"),
//	)
//	defer p.Start().Stop()
//
// The funcad command exposes the same settings through --pprof-mode and
// --pprof-dir. Profile files are written to the output directory with names
// matching the mode (cpu.pprof, mem.pprof, and so on). No HTTP endpoint is
// registered.
package profile

// Tag is the build tag that enables profiling.
const Tag = "pprof"
