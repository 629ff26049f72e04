// Package rag defines the resource-allocation-graph data model.
//
// # Overview
//
// A resource-allocation graph (RAG) describes which processes hold which
// resources and which resources they are waiting for. The model is a plain
// node/edge list supplied by the caller as one point-in-time snapshot:
//
//   - PROCESS and RESOURCE nodes, identified by unique string IDs
//   - ALLOCATION edges (resource → process: the resource is currently held)
//   - REQUEST edges (process → resource: the process is blocked waiting)
//
// Resources may have multiple instances; edges carry the instance count
// involved. The convention on edge direction is semantic, not enforced here:
// analysis correctness depends on callers respecting it.
//
// # Snapshots Are Values
//
// A [GraphState] has no identity beyond its contents. Analyses never mutate
// it, nothing is retained between calls, and two analyses of the same value
// produce the same structural result. This keeps every analysis a pure
// function and safe to run concurrently.
//
// # Building
//
// [Build] converts a snapshot into a [Directed] adjacency structure for
// traversal. Edges whose endpoints are missing from the node list are
// tolerated: the endpoint becomes a vertex with no declared type or label
// rather than an error. Shape validation (required fields, numeric bounds,
// enum tags) is the job of the boundary, not of this package; see
// pkg/errors.
//
// The analysis algorithms live in the analyze subpackage.
package rag
