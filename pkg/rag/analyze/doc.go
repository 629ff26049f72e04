// Package analyze implements the deadlock analyses over a resource-allocation
// graph snapshot.
//
// # Operations
//
// Three top-level operations cover the classical questions about a RAG:
//
//   - [Deadlock]: does the snapshot contain a circular wait? Runs cycle
//     detection and derives the process-level wait-for graph.
//   - [SafeSequence]: is there an execution order under which every process
//     can finish? A Banker's-algorithm-style feasibility check.
//   - [Simulate]: would granting one more allocation push the system into
//     deadlock? Composes the candidate state and re-runs [Deadlock] on it.
//
// All three are pure functions of their input: no state survives a call, and
// concurrent invocations need no coordination.
//
// # Determinism
//
// Cycle detection visits vertices in snapshot declaration order and arcs in
// edge declaration order, so identical input always reports the identical
// cycle. Which cycle is reported when several exist is an implementation
// detail; only existence and correctness of the reported one are contractual.
//
// # Domain Outcomes Are Not Errors
//
// A detected deadlock or an unsafe state is a successfully computed answer,
// encoded in the result value. Nothing in this package returns an error for
// conditions reachable through structurally valid input.
package analyze
