// Package pkg holds the reusable libraries behind the deadpanda CLI and API.
//
// # Overview
//
// deadpanda models operating-system style resource contention as a
// resource-allocation graph and answers three questions about a snapshot:
// is the system deadlocked, does a safe execution sequence exist, and would
// granting one more allocation be safe.
//
// The pkg directory is organized by concern:
//
//   - [rag] - graph snapshot types and the adjacency structure built from them
//   - [rag/analyze] - cycle detection, wait-for graphs, safe sequences, simulation
//   - [rag/dot] - Graphviz DOT and SVG rendering of snapshots
//   - [errors] - structured errors with machine-readable codes, plus input validation
//   - [cache] - response caching backends (null, memory, Redis)
//   - [buildinfo] - ldflags-injected version information
//
// The typical data flow:
//
//	JSON snapshot
//	     ↓
//	[errors] validation
//	     ↓
//	[rag] Build (adjacency)
//	     ↓
//	[rag/analyze] Deadlock / SafeSequence / Simulate
//	     ↓
//	result objects → HTTP response, CLI output, or [rag/dot] diagram
//
// [rag]: https://pkg.go.dev/github.com/aryaneelshivam/deadpanda/pkg/rag
// [rag/analyze]: https://pkg.go.dev/github.com/aryaneelshivam/deadpanda/pkg/rag/analyze
// [rag/dot]: https://pkg.go.dev/github.com/aryaneelshivam/deadpanda/pkg/rag/dot
// [errors]: https://pkg.go.dev/github.com/aryaneelshivam/deadpanda/pkg/errors
// [cache]: https://pkg.go.dev/github.com/aryaneelshivam/deadpanda/pkg/cache
// [buildinfo]: https://pkg.go.dev/github.com/aryaneelshivam/deadpanda/pkg/buildinfo
package pkg
