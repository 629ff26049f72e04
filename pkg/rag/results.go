package rag

// CycleInfo describes one directed cycle found in the graph.
//
// CyclePath lists the vertex IDs in cycle order with the first ID repeated
// at the end; AffectedNodes is the same set without the trailing repeat.
// AffectedEdges holds the IDs of every edge connecting consecutive cycle
// vertices; parallel edges between the same pair are all included.
type CycleInfo struct {
	Exists        bool     `json:"exists"`
	CyclePath     []string `json:"cycle_path"`
	AffectedNodes []string `json:"affected_nodes"`
	AffectedEdges []string `json:"affected_edges"`
}

// DeadlockAnalysisResult is the combined outcome of cycle detection and
// wait-for-graph derivation over one snapshot.
//
// HasDeadlock mirrors cycle existence. For single-instance resources this is
// exact; with multiple instances a cycle is sufficient but not necessary
// evidence, and callers wanting multi-instance precision should also consult
// the safe-sequence check.
type DeadlockAnalysisResult struct {
	HasDeadlock  bool                `json:"has_deadlock"`
	CycleInfo    *CycleInfo          `json:"cycle_info,omitempty"`
	WaitForGraph map[string][]string `json:"wait_for_graph"`
	Message      string              `json:"message"`
	Timestamp    string              `json:"timestamp"`
}

// SafeSequenceResult is the outcome of the Banker's-style feasibility check.
// SafeSequence is empty when the state is unsafe or holds no processes.
type SafeSequenceResult struct {
	IsSafe       bool     `json:"is_safe"`
	SafeSequence []string `json:"safe_sequence"`
	Message      string   `json:"message"`
}

// SimulationResult is the outcome of evaluating a hypothetical allocation.
// NewState is present only when the allocation proved safe; a rejected
// candidate state is discarded, never exposed.
type SimulationResult struct {
	Success            bool        `json:"success"`
	Message            string      `json:"message"`
	NewState           *GraphState `json:"new_state,omitempty"`
	WouldCauseDeadlock bool        `json:"would_cause_deadlock"`
}
