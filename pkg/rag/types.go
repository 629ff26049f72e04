package rag

// NodeType distinguishes the two vertex kinds of a resource-allocation graph.
type NodeType string

// Node types. The set is closed; anything else is rejected at the
// validation boundary (pkg/errors), never inside the algorithms.
const (
	NodeProcess  NodeType = "process"
	NodeResource NodeType = "resource"
)

// Valid reports whether t is one of the documented node types.
func (t NodeType) Valid() bool {
	return t == NodeProcess || t == NodeResource
}

// EdgeType distinguishes the two arc kinds of a resource-allocation graph.
type EdgeType string

// Edge types. ALLOCATION edges run resource → process (currently held),
// REQUEST edges run process → resource (waited for).
const (
	EdgeAllocation EdgeType = "allocation"
	EdgeRequest    EdgeType = "request"
)

// Valid reports whether t is one of the documented edge types.
func (t EdgeType) Valid() bool {
	return t == EdgeAllocation || t == EdgeRequest
}

// Node is a vertex in the resource-allocation graph.
//
// Instances and Available are meaningful only for RESOURCE nodes: Instances
// is the total number of units the resource provides, Available how many are
// currently free. The model does not enforce Available <= Instances; callers
// own that invariant.
type Node struct {
	ID        string   `json:"id"`
	Type      NodeType `json:"type"`
	Label     string   `json:"label"`
	Instances int      `json:"instances,omitempty"`
	Available int      `json:"available,omitempty"`
}

// Edge is a directed arc between two nodes, carrying the number of resource
// units allocated or requested.
type Edge struct {
	ID        string   `json:"id"`
	Source    string   `json:"source"`
	Target    string   `json:"target"`
	Type      EdgeType `json:"type"`
	Instances int      `json:"instances"`
}

// GraphState is one immutable snapshot of the whole graph: an ordered node
// list and an ordered edge list. Order matters for determinism; the
// analyzers scan both lists in declaration order.
type GraphState struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Clone returns a deep copy of the state. Node and Edge are plain value
// types, so copying the slices is sufficient.
func (s GraphState) Clone() GraphState {
	out := GraphState{
		Nodes: make([]Node, len(s.Nodes)),
		Edges: make([]Edge, len(s.Edges)),
	}
	copy(out.Nodes, s.Nodes)
	copy(out.Edges, s.Edges)
	return out
}

// AllocationRequest is a proposed grant of resource units to a process,
// evaluated hypothetically by the simulation engine before being adopted.
type AllocationRequest struct {
	ProcessID  string `json:"process_id"`
	ResourceID string `json:"resource_id"`
	Instances  int    `json:"instances"`
}
